package ecs

import "reflect"

// Store is the erased view of a component sparse set. The Registry holds one
// per component type so it can bulk-remove an entity's data on destroy
// without knowing any concrete component schema.
type Store interface {
	Remove(id EntityID) bool
	Len() int
	Clear()
}

// Registry routes typed component access to the sparse set for that type.
// A given (entity, component type) pair maps to at most one stored value.
type Registry struct {
	stores map[reflect.Type]Store
}

func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[reflect.Type]Store, 16),
	}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// StoreFor returns the sparse set holding components of type T, creating it
// on first use.
func StoreFor[T any](r *Registry) *SparseSet[T] {
	key := typeKey[T]()
	if s, ok := r.stores[key]; ok {
		return s.(*SparseSet[T])
	}
	s := NewSparseSet[T]()
	r.stores[key] = s
	return s
}

// Add attaches a component of type T to the entity. Returns false if the
// entity already has one.
func Add[T any](r *Registry, id EntityID, value T) bool {
	return StoreFor[T](r).Add(id, value)
}

// Get returns the entity's component of type T. The component must be
// present; callers pair this with Has.
func Get[T any](r *Registry, id EntityID) *T {
	return StoreFor[T](r).Get(id)
}

func Has[T any](r *Registry, id EntityID) bool {
	return StoreFor[T](r).Contains(id)
}

// Remove detaches the entity's component of type T. Returns false if absent.
func Remove[T any](r *Registry, id EntityID) bool {
	return StoreFor[T](r).Remove(id)
}

// RemoveAll clears the given entity from every registered store.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}

// Clear drops every per-type store.
func (r *Registry) Clear() {
	r.stores = make(map[reflect.Type]Store, 16)
}
