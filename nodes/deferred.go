package nodes

import (
	"sync"

	"github.com/bassclefstudio/streams/events"
)

// Deferred resolves its parent lazily: the factory runs once, on first
// start, and the resolved stream's events are forwarded verbatim.
//
// Because the started flag is set before the factory runs, the factory may
// return a graph that refers back to this node; the nested Start call is a
// no-op and resolution terminates.
type Deferred[T any] struct {
	status
	factory  FactoryFunc[T]
	mu       sync.Mutex
	resolved Stream[T]
	out      *events.Emitter[T]
}

// NewDeferred constructs a Deferred around factory. factory must be non-nil;
// it is not invoked until the node starts.
func NewDeferred[T any](factory FactoryFunc[T]) *Deferred[T] {
	if factory == nil {
		panic("nodes: NewDeferred with nil factory")
	}
	return &Deferred[T]{factory: factory, out: events.NewEmitter[T]()}
}

// Events returns the node's emitter.
func (d *Deferred[T]) Events() *events.Emitter[T] { return d.out }

// Parents returns the resolved parent, or nil before first start.
func (d *Deferred[T]) Parents() []Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved == nil {
		return nil
	}
	return []Node{d.resolved}
}

// Start resolves the factory, subscribes to the resolved stream and starts
// it. Idempotent.
func (d *Deferred[T]) Start() {
	if !d.tryStart() {
		return
	}
	parent := d.factory()
	if parent == nil {
		panic("nodes: Deferred factory returned nil stream")
	}
	d.mu.Lock()
	d.resolved = parent
	d.mu.Unlock()
	parent.Events().Subscribe(d.out.Emit)
	parent.Start()
}
