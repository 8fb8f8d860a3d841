package event

import "reflect"

// Bus is a double-buffered event bus. Events emitted during tick N are
// delivered at the start of tick N+1: SwapBuffers rotates the buffers, then
// DispatchAll drains the front one. Single-threaded like the rest of the
// engine; handlers run synchronously on the simulation goroutine.
type Bus struct {
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]any
}

func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]any),
	}
}

// Emit queues an event into the back buffer for delivery next tick.
func Emit[T any](b *Bus, ev T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back[t] = append(b.back[t], ev)
}

// Subscribe registers a handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], fn)
}

// SwapBuffers rotates back to front and clears the new back buffer. Called
// once at tick start, before DispatchAll.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	for t := range b.back {
		b.back[t] = b.back[t][:0]
	}
}

// DispatchAll delivers every front-buffer event to its subscribers.
func (b *Bus) DispatchAll() {
	for t, events := range b.front {
		handlers := b.handlers[t]
		for _, ev := range events {
			for _, h := range handlers {
				// Subscribe and Emit share the type key, so the
				// assertion in the typed wrapper cannot fail.
				reflect.ValueOf(h).Call([]reflect.Value{reflect.ValueOf(ev)})
			}
		}
	}
}

// Clear drops all buffered events and handlers.
func (b *Bus) Clear() {
	b.front = make(map[reflect.Type][]any)
	b.back = make(map[reflect.Type][]any)
	b.handlers = make(map[reflect.Type][]any)
}
