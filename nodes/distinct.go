package nodes

import (
	"sync"

	"github.com/bassclefstudio/streams/events"
)

// Distinct forwards a result element only when the include predicate says it
// differs from the previously forwarded one. The first element is always
// forwarded; an excluded element leaves "previous" untouched, so a long run
// of repeats is compared against the value that opened the run.
type Distinct[T any] struct {
	status
	parent  Stream[T]
	include IncludeFunc[T]
	mu      sync.Mutex
	prev    T
	primed  bool
	out     *events.Emitter[T]
}

// NewDistinct constructs a Distinct over parent.
func NewDistinct[T any](parent Stream[T], include IncludeFunc[T]) *Distinct[T] {
	if parent == nil {
		panic("nodes: NewDistinct with nil parent")
	}
	if include == nil {
		panic("nodes: NewDistinct with nil include")
	}
	return &Distinct[T]{parent: parent, include: include, out: events.NewEmitter[T]()}
}

// Events returns the node's emitter.
func (d *Distinct[T]) Events() *events.Emitter[T] { return d.out }

// Parents returns the single upstream node.
func (d *Distinct[T]) Parents() []Node { return []Node{d.parent} }

// Start subscribes the gate to the parent and starts it. Idempotent.
func (d *Distinct[T]) Start() {
	if !d.tryStart() {
		return
	}
	d.parent.Events().Subscribe(d.accept)
	d.parent.Start()
}

func (d *Distinct[T]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		value := ev.Value()
		d.mu.Lock()
		if !d.primed {
			d.prev = value
			d.primed = true
			d.mu.Unlock()
			d.out.EmitResult(value)
			return
		}
		prev := d.prev
		d.mu.Unlock()
		keep, err := d.include(value, prev)
		if err != nil {
			d.out.EmitError(newDistinctError(err))
			return
		}
		if !keep {
			return
		}
		d.mu.Lock()
		d.prev = value
		d.mu.Unlock()
		d.out.EmitResult(value)
	case events.KindError:
		d.out.EmitError(ev.Err())
	case events.KindCompleted:
		d.out.EmitCompleted()
	}
}
