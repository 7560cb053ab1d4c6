// Package properties provides host-side support for property change
// notifications: an embeddable broadcaster, a dynamic property bag, and a
// registry that resolves dot separated property paths without runtime
// introspection.
package properties

import "sync"

type listener struct {
	id int
	fn func(property string)
}

// Broadcaster is an embeddable property change notifier. The zero value is
// ready to use. Types embedding a Broadcaster satisfy the graph's Notifier
// capability: listeners registered through OnChanged are invoked by Notify,
// in registration order, on the notifying goroutine.
type Broadcaster struct {
	mu        sync.Mutex
	listeners []listener
	nextID    int
}

// OnChanged registers a listener and returns a func that cancels the
// registration. A listener may be invoked with an empty property name,
// meaning every property should be treated as possibly changed.
func (b *Broadcaster) OnChanged(fn func(property string)) (cancel func()) {
	if fn == nil {
		panic("properties: OnChanged with nil listener")
	}
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify reports the named property as changed to every current listener.
// An empty name reports a change to every property.
func (b *Broadcaster) Notify(property string) {
	b.mu.Lock()
	fns := make([]func(string), len(b.listeners))
	for i, l := range b.listeners {
		fns[i] = l.fn
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(property)
	}
}

// Listeners returns the number of registered listeners.
func (b *Broadcaster) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
