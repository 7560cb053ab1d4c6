package nodes

import (
	"context"
	"sync"

	"github.com/bassclefstudio/streams/events"
)

// Fold reduces the stream with a running accumulator seeded at construction,
// emitting the accumulator value after every input. The accumulator is read
// before the fold step and written after it; when upstream delivers from
// several goroutines (a parallel stage, say) concurrent steps can observe
// the same prior value and the later completion wins. Access itself is
// synchronized, so the state is never torn.
type Fold[T any, U any] struct {
	status
	parent Stream[T]
	fn     AccumulateFunc[U, T]
	mu     sync.Mutex
	acc    U
	out    *events.Emitter[U]
}

// NewFold constructs a Fold over parent with the given seed.
func NewFold[T any, U any](parent Stream[T], seed U, fn AccumulateFunc[U, T]) *Fold[T, U] {
	if parent == nil {
		panic("nodes: NewFold with nil parent")
	}
	if fn == nil {
		panic("nodes: NewFold with nil accumulator")
	}
	return &Fold[T, U]{parent: parent, fn: fn, acc: seed, out: events.NewEmitter[U]()}
}

// Events returns the node's emitter.
func (f *Fold[T, U]) Events() *events.Emitter[U] { return f.out }

// Parents returns the single upstream node.
func (f *Fold[T, U]) Parents() []Node { return []Node{f.parent} }

// Start subscribes the fold step to the parent and starts it. Idempotent.
func (f *Fold[T, U]) Start() {
	if !f.tryStart() {
		return
	}
	f.parent.Events().Subscribe(f.accept)
	f.parent.Start()
}

func (f *Fold[T, U]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		f.mu.Lock()
		acc := f.acc
		f.mu.Unlock()
		next, err := f.fn(acc, ev.Value())
		if err != nil {
			f.out.EmitError(newFoldError(err))
			return
		}
		f.mu.Lock()
		f.acc = next
		f.mu.Unlock()
		f.out.EmitResult(next)
	case events.KindError:
		f.out.EmitError(ev.Err())
	case events.KindCompleted:
		f.out.EmitCompleted()
	}
}

// ParallelFold is Fold with the step run asynchronously, one goroutine per
// input with no concurrency bound. Steps that overlap read the same prior
// accumulator and the last completion wins; emission order is completion
// order.
type ParallelFold[T any, U any] struct {
	status
	parent Stream[T]
	fn     AsyncAccumulateFunc[U, T]
	ctx    context.Context
	mu     sync.Mutex
	acc    U
	out    *events.Emitter[U]
}

// NewParallelFold constructs a ParallelFold over parent with the given seed.
// Params{Ctx} supplies the context handed to each step.
func NewParallelFold[T any, U any](parent Stream[T], seed U, fn AsyncAccumulateFunc[U, T], params ...Params) *ParallelFold[T, U] {
	if parent == nil {
		panic("nodes: NewParallelFold with nil parent")
	}
	if fn == nil {
		panic("nodes: NewParallelFold with nil accumulator")
	}
	applied := applyParams(params)
	return &ParallelFold[T, U]{
		parent: parent,
		fn:     fn,
		ctx:    applied.ctx(),
		acc:    seed,
		out:    events.NewEmitter[U](),
	}
}

// Events returns the node's emitter.
func (f *ParallelFold[T, U]) Events() *events.Emitter[U] { return f.out }

// Parents returns the single upstream node.
func (f *ParallelFold[T, U]) Parents() []Node { return []Node{f.parent} }

// Start subscribes the fold step to the parent and starts it. Idempotent.
func (f *ParallelFold[T, U]) Start() {
	if !f.tryStart() {
		return
	}
	f.parent.Events().Subscribe(f.accept)
	f.parent.Start()
}

func (f *ParallelFold[T, U]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		go f.reduce(ev.Value())
	case events.KindError:
		f.out.EmitError(ev.Err())
	case events.KindCompleted:
		f.out.EmitCompleted()
	}
}

func (f *ParallelFold[T, U]) reduce(value T) {
	f.mu.Lock()
	acc := f.acc
	f.mu.Unlock()
	next, err := f.fn(f.ctx, acc, value)
	if err != nil {
		f.out.EmitError(newFoldError(err))
		return
	}
	f.mu.Lock()
	f.acc = next
	f.mu.Unlock()
	f.out.EmitResult(next)
}
