package system

import (
	"time"

	"github.com/maksprotsyk/rendering-api-comparer/internal/component"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
)

// LifetimeSystem counts down entity lifetimes and marks expired entities
// for end-of-tick destruction. Actual teardown happens in CleanupSystem, so
// every system this tick still sees a consistent world.
type LifetimeSystem struct {
	world *ecs.World
}

func NewLifetimeSystem(world *ecs.World) *LifetimeSystem {
	return &LifetimeSystem{world: world}
}

func (s *LifetimeSystem) Priority() int { return PriorityLifetime }

func (s *LifetimeSystem) OnStart() {}

func (s *LifetimeSystem) OnUpdate(dt time.Duration) {
	step := dt.Seconds()
	lifetimes := ecs.StoreFor[component.Lifetime](s.world.Registry())
	lifetimes.Each(func(id ecs.EntityID, lt *component.Lifetime) {
		lt.Seconds -= step
		if lt.Seconds <= 0 {
			s.world.MarkForDestruction(id)
		}
	})
}

func (s *LifetimeSystem) OnStop() {}
