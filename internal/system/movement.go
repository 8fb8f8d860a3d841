package system

import (
	"time"

	"github.com/maksprotsyk/rendering-api-comparer/internal/component"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
)

// MovementSystem integrates acceleration into velocity and velocity into
// position for every entity carrying both a Transform and a Motion.
type MovementSystem struct {
	world *ecs.World
}

func NewMovementSystem(world *ecs.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Priority() int { return PriorityMovement }

func (s *MovementSystem) OnStart() {}

func (s *MovementSystem) OnUpdate(dt time.Duration) {
	step := dt.Seconds()
	transforms := ecs.StoreFor[component.Transform](s.world.Registry())
	motions := ecs.StoreFor[component.Motion](s.world.Registry())
	ecs.Each2(transforms, motions, func(_ ecs.EntityID, t *component.Transform, m *component.Motion) {
		m.Velocity = m.Velocity.Add(m.Acceleration.Scale(step))
		t.Position = t.Position.Add(m.Velocity.Scale(step))
	})
}

func (s *MovementSystem) OnStop() {}
