package system

import "time"

// System is the interface every engine system implements. The scheduler
// drives the three lifecycle hooks: OnStart once when the system is promoted
// to the active set, OnUpdate once per tick while active, OnStop once when
// the system is torn down.
//
// Lower priority runs first; ties break by registration order.
type System interface {
	Priority() int
	OnStart()
	OnUpdate(dt time.Duration)
	OnStop()
}
