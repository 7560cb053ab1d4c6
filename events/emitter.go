package events

import "sync"

// Subscriber is a callback invoked with each event emitted on an Emitter.
type Subscriber[T any] func(Event[T])

// Emitter is an ordered multicast channel for events. Subscribers are
// invoked synchronously, on the emitting goroutine, in registration order.
// Subscriptions are append-only; there is no unsubscribe.
//
// Emit snapshots the subscriber list before invoking anything, so a
// subscriber registered during an in-flight emission does not receive that
// emission and never corrupts it. Callbacks run outside the emitter's lock,
// which keeps re-entrant emission (a subscriber emitting back into the same
// emitter, as recursive graphs do) deadlock free.
type Emitter[T any] struct {
	mu   sync.RWMutex
	subs []Subscriber[T]
}

// NewEmitter constructs an empty Emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscribe appends fn to the subscriber list. Registering the same callback
// twice invokes it twice per emission.
func (e *Emitter[T]) Subscribe(fn Subscriber[T]) {
	if fn == nil {
		panic("events: Subscribe with nil subscriber")
	}
	e.mu.Lock()
	e.subs = append(e.subs, fn)
	e.mu.Unlock()
}

// Len returns the number of registered subscribers.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

// Emit delivers ev to every subscriber registered before the call, in
// registration order. Safe for concurrent use; concurrent emissions
// interleave at event granularity, never within a callback.
func (e *Emitter[T]) Emit(ev Event[T]) {
	e.mu.RLock()
	subs := e.subs
	e.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// EmitResult emits a result event carrying value.
func (e *Emitter[T]) EmitResult(value T) {
	e.Emit(Result(value))
}

// EmitError emits an error event carrying err.
func (e *Emitter[T]) EmitError(err error) {
	e.Emit(Error[T](err))
}

// EmitCompleted emits a completion marker.
func (e *Emitter[T]) EmitCompleted() {
	e.Emit(Completed[T]())
}
