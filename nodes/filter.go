package nodes

import "github.com/bassclefstudio/streams/events"

// Filter forwards result elements whose predicate returns true and drops the
// rest silently. A failing predicate emits an error event; parent errors and
// completion pass through untouched.
type Filter[T any] struct {
	status
	parent Stream[T]
	pred   PredicateFunc[T]
	out    *events.Emitter[T]
}

// NewFilter constructs a Filter over parent.
func NewFilter[T any](parent Stream[T], pred PredicateFunc[T]) *Filter[T] {
	if parent == nil {
		panic("nodes: NewFilter with nil parent")
	}
	if pred == nil {
		panic("nodes: NewFilter with nil predicate")
	}
	return &Filter[T]{parent: parent, pred: pred, out: events.NewEmitter[T]()}
}

// Events returns the node's emitter.
func (f *Filter[T]) Events() *events.Emitter[T] { return f.out }

// Parents returns the single upstream node.
func (f *Filter[T]) Parents() []Node { return []Node{f.parent} }

// Start subscribes the predicate to the parent and starts it. Idempotent.
func (f *Filter[T]) Start() {
	if !f.tryStart() {
		return
	}
	f.parent.Events().Subscribe(f.accept)
	f.parent.Start()
}

func (f *Filter[T]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		keep, err := f.pred(ev.Value())
		if err != nil {
			f.out.EmitError(newFilterError(err))
			return
		}
		if keep {
			f.out.EmitResult(ev.Value())
		}
	case events.KindError:
		f.out.EmitError(ev.Err())
	case events.KindCompleted:
		f.out.EmitCompleted()
	}
}
