package system

import (
	"math"
	"time"

	"github.com/maksprotsyk/rendering-api-comparer/internal/component"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
)

// OrbitSystem sweeps orbiting entities around their center in the ground
// plane, clockwise or counterclockwise per entity, and keeps each entity's
// yaw facing along the sweep.
type OrbitSystem struct {
	world *ecs.World
}

func NewOrbitSystem(world *ecs.World) *OrbitSystem {
	return &OrbitSystem{world: world}
}

func (s *OrbitSystem) Priority() int { return PriorityOrbit }

func (s *OrbitSystem) OnStart() {}

func (s *OrbitSystem) OnUpdate(dt time.Duration) {
	step := dt.Seconds()
	transforms := ecs.StoreFor[component.Transform](s.world.Registry())
	orbits := ecs.StoreFor[component.Orbit](s.world.Registry())
	ecs.Each2(transforms, orbits, func(_ ecs.EntityID, t *component.Transform, o *component.Orbit) {
		dir := 1.0
		if o.Clockwise {
			dir = -1.0
		}
		o.Angle += dir * o.Speed * step
		t.Position.X = o.Center.X + o.Radius*math.Cos(o.Angle)
		t.Position.Z = o.Center.Z + o.Radius*math.Sin(o.Angle)
		t.Rotation.Y = o.Angle
	})
}

func (s *OrbitSystem) OnStop() {}
