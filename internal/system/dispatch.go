package system

import (
	"time"

	"github.com/maksprotsyk/rendering-api-comparer/internal/core/event"
)

// EventDispatchSystem rotates the bus buffers and delivers last tick's
// events. Runs first so every other system observes a fully dispatched bus.
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Priority() int { return PriorityEvents }

func (s *EventDispatchSystem) OnStart() {}

func (s *EventDispatchSystem) OnUpdate(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

func (s *EventDispatchSystem) OnStop() {}
