package event

import "github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"

// Entity lifecycle events. Component-level change notification is
// deliberately not part of the bus.

type EntitySpawned struct {
	EntityID ecs.EntityID
	Tag      string
}

type EntityDestroyed struct {
	EntityID ecs.EntityID
}
