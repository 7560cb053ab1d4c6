package nodes

import (
	"context"

	"github.com/bassclefstudio/streams/events"
)

// Map transforms each result element with a synchronous function. A failing
// transform emits an error event wrapping the cause; the node then keeps
// accepting later inputs. Parent errors and completion pass through
// untouched.
type Map[T any, U any] struct {
	status
	parent Stream[T]
	fn     TransformFunc[T, U]
	out    *events.Emitter[U]
}

// NewMap constructs a Map over parent.
func NewMap[T any, U any](parent Stream[T], fn TransformFunc[T, U]) *Map[T, U] {
	if parent == nil {
		panic("nodes: NewMap with nil parent")
	}
	if fn == nil {
		panic("nodes: NewMap with nil transform")
	}
	return &Map[T, U]{parent: parent, fn: fn, out: events.NewEmitter[U]()}
}

// Events returns the node's emitter.
func (m *Map[T, U]) Events() *events.Emitter[U] { return m.out }

// Parents returns the single upstream node.
func (m *Map[T, U]) Parents() []Node { return []Node{m.parent} }

// Start subscribes the transform to the parent and starts it. Idempotent.
func (m *Map[T, U]) Start() {
	if !m.tryStart() {
		return
	}
	m.parent.Events().Subscribe(m.accept)
	m.parent.Start()
}

func (m *Map[T, U]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		mapped, err := m.fn(ev.Value())
		if err != nil {
			m.out.EmitError(newMapError(err))
			return
		}
		m.out.EmitResult(mapped)
	case events.KindError:
		m.out.EmitError(ev.Err())
	case events.KindCompleted:
		m.out.EmitCompleted()
	}
}

// ParallelMap transforms result elements asynchronously, one goroutine per
// element with no concurrency bound. Output order is completion order, not
// arrival order. Parent errors and completion pass through immediately and
// can therefore precede transforms still in flight.
type ParallelMap[T any, U any] struct {
	status
	parent Stream[T]
	fn     AsyncTransformFunc[T, U]
	ctx    context.Context
	out    *events.Emitter[U]
}

// NewParallelMap constructs a ParallelMap over parent. Params{Ctx} supplies
// the context handed to each transform.
func NewParallelMap[T any, U any](parent Stream[T], fn AsyncTransformFunc[T, U], params ...Params) *ParallelMap[T, U] {
	if parent == nil {
		panic("nodes: NewParallelMap with nil parent")
	}
	if fn == nil {
		panic("nodes: NewParallelMap with nil transform")
	}
	applied := applyParams(params)
	return &ParallelMap[T, U]{
		parent: parent,
		fn:     fn,
		ctx:    applied.ctx(),
		out:    events.NewEmitter[U](),
	}
}

// Events returns the node's emitter.
func (m *ParallelMap[T, U]) Events() *events.Emitter[U] { return m.out }

// Parents returns the single upstream node.
func (m *ParallelMap[T, U]) Parents() []Node { return []Node{m.parent} }

// Start subscribes the transform to the parent and starts it. Idempotent.
func (m *ParallelMap[T, U]) Start() {
	if !m.tryStart() {
		return
	}
	m.parent.Events().Subscribe(m.accept)
	m.parent.Start()
}

func (m *ParallelMap[T, U]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		go m.transform(ev.Value())
	case events.KindError:
		m.out.EmitError(ev.Err())
	case events.KindCompleted:
		m.out.EmitCompleted()
	}
}

func (m *ParallelMap[T, U]) transform(value T) {
	mapped, err := m.fn(m.ctx, value)
	if err != nil {
		m.out.EmitError(newMapError(err))
		return
	}
	m.out.EmitResult(mapped)
}
