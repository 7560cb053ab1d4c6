package properties

import "sync"

// Bag is a mutable set of named property values that broadcasts a change
// notification on every Set. It suits hosts that have no notifier plumbing
// of their own, and tests. Set always notifies, whether or not the stored
// value changed; collapsing repeats is a concern for the graph, not the host.
type Bag struct {
	Broadcaster
	mu     sync.RWMutex
	values map[string]any
}

// NewBag constructs an empty Bag.
func NewBag() *Bag {
	return &Bag{values: make(map[string]any)}
}

// Set stores value under the named property and notifies listeners.
func (b *Bag) Set(property string, value any) {
	b.mu.Lock()
	b.values[property] = value
	b.mu.Unlock()
	b.Notify(property)
}

// Get returns the value stored under the named property.
func (b *Bag) Get(property string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, ok := b.values[property]
	return value, ok
}

// Value returns the value stored under the named property, or nil.
func (b *Bag) Value(property string) any {
	value, _ := b.Get(property)
	return value
}
