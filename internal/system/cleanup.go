package system

import (
	"time"

	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/event"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end
// and announces each destroyed entity on the bus.
type CleanupSystem struct {
	world *ecs.World
	bus   *event.Bus
}

func NewCleanupSystem(world *ecs.World, bus *event.Bus) *CleanupSystem {
	return &CleanupSystem{world: world, bus: bus}
}

func (s *CleanupSystem) Priority() int { return PriorityCleanup }

func (s *CleanupSystem) OnStart() {}

func (s *CleanupSystem) OnUpdate(_ time.Duration) {
	for _, id := range s.world.FlushDestroyQueue() {
		event.Emit(s.bus, event.EntityDestroyed{EntityID: id})
	}
}

func (s *CleanupSystem) OnStop() {}
