package system

// Built-in system priorities (lower runs first). Scripted systems pick
// their own value and slot anywhere in between.
const (
	PriorityEvents   = 0   // deliver last tick's events before anything reads them
	PriorityMovement = 10  // integrate motion before dependent readers
	PriorityOrbit    = 20  // after free motion, before expiry
	PriorityLifetime = 30  // may mark entities for destruction
	PriorityStats    = 40  // observes the tick, runs after game logic
	PriorityCleanup  = 100 // destroy queued entities last
)
