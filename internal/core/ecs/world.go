package ecs

// World is the top-level ECS container passed explicitly to systems. It owns
// the entity pool, the component registry, and a deferred destruction queue
// flushed at tick end so a system can kill entities while stores are being
// iterated.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, 64),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// DestroyEntity releases the ID immediately. Component data is the
// registry's concern: callers that want it gone use MarkForDestruction, or
// call Registry().RemoveAll themselves.
func (w *World) DestroyEntity(id EntityID) {
	w.pool.Destroy(id)
}

// MarkForDestruction queues an entity for end-of-tick teardown.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue strips components from and destroys all queued entities.
// Runs after every system has updated, typically from a cleanup system.
func (w *World) FlushDestroyQueue() []EntityID {
	if len(w.destroyQueue) == 0 {
		return nil
	}
	destroyed := make([]EntityID, 0, len(w.destroyQueue))
	for _, id := range w.destroyQueue {
		if !w.pool.Alive(id) {
			continue
		}
		w.registry.RemoveAll(id)
		w.pool.Destroy(id)
		destroyed = append(destroyed, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
	return destroyed
}

// Clear resets entity allocation and drops all component stores.
func (w *World) Clear() {
	w.destroyQueue = w.destroyQueue[:0]
	w.registry.Clear()
	w.pool.Clear()
}
