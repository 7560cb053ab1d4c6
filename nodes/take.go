package nodes

import (
	"sync"

	"github.com/bassclefstudio/streams/events"
)

// Take collects result elements into a sliding count window. Nothing is
// emitted until the window first fills; from then on every input produces
// one output computed over the ordered window, and the window slides forward
// by one.
//
// Example: a window of size 2 with a summing produce over inputs 1 2 3 4:
//
//	inputs:   1     2     3     4
//	windows:      [1 2] [2 3] [3 4]
//	outputs:        3     5     7
//
// Parent errors and completion pass through without touching the window; a
// partial window is never flushed.
type Take[T any, U any] struct {
	status
	parent  Stream[T]
	produce ProduceFunc[T, U]
	size    int
	mu      sync.Mutex
	window  []T
	out     *events.Emitter[U]
}

// NewTake constructs a Take over parent. Params{Size} sets the window
// length, DefaultTakeSize when omitted.
func NewTake[T any, U any](parent Stream[T], produce ProduceFunc[T, U], params ...Params) *Take[T, U] {
	if parent == nil {
		panic("nodes: NewTake with nil parent")
	}
	if produce == nil {
		panic("nodes: NewTake with nil produce")
	}
	applied := applyParams(params)
	size := applied.size()
	return &Take[T, U]{
		parent:  parent,
		produce: produce,
		size:    size,
		window:  make([]T, 0, size),
		out:     events.NewEmitter[U](),
	}
}

// Size returns the window length.
func (t *Take[T, U]) Size() int { return t.size }

// Events returns the node's emitter.
func (t *Take[T, U]) Events() *events.Emitter[U] { return t.out }

// Parents returns the single upstream node.
func (t *Take[T, U]) Parents() []Node { return []Node{t.parent} }

// Start subscribes the window to the parent and starts it. Idempotent.
func (t *Take[T, U]) Start() {
	if !t.tryStart() {
		return
	}
	t.parent.Events().Subscribe(t.accept)
	t.parent.Start()
}

func (t *Take[T, U]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		t.mu.Lock()
		t.window = append(t.window, ev.Value())
		if len(t.window) < t.size {
			t.mu.Unlock()
			return
		}
		snapshot := make([]T, t.size)
		copy(snapshot, t.window)
		t.window = t.window[1:]
		t.mu.Unlock()
		t.emit(snapshot)
	case events.KindError:
		t.out.EmitError(ev.Err())
	case events.KindCompleted:
		t.out.EmitCompleted()
	}
}

func (t *Take[T, U]) emit(window []T) {
	produced, err := t.produce(window)
	if err != nil {
		t.out.EmitError(newWindowError(err))
		return
	}
	t.out.EmitResult(produced)
}
