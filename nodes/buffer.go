package nodes

import (
	"sync"
	"time"

	"gopkg.in/tomb.v2"

	"github.com/bassclefstudio/streams/events"
)

// Buffer collects result elements into fixed, non-overlapping wall-clock
// periods. Each time the period elapses the buffered elements are handed to
// the produce function in arrival order and the buffer resets; an empty
// period still produces, over an empty window.
//
//	period:   |---------|---------|---------|
//	inputs:     1   2         3
//	windows:    [1 2]     [3]       []
//
// The flush timer starts with the node and keeps firing until Stop is
// called; parent errors and completion pass through without flushing.
// Flushed outputs are emitted on the timer goroutine.
type Buffer[T any, U any] struct {
	status
	parent  Stream[T]
	produce ProduceFunc[T, U]
	period  time.Duration
	mu      sync.Mutex
	batch   []T
	tb      tomb.Tomb
	stop    sync.Once
	out     *events.Emitter[U]
}

// NewBuffer constructs a Buffer over parent flushing every period. The
// period must be positive.
func NewBuffer[T any, U any](parent Stream[T], period time.Duration, produce ProduceFunc[T, U]) *Buffer[T, U] {
	if parent == nil {
		panic("nodes: NewBuffer with nil parent")
	}
	if produce == nil {
		panic("nodes: NewBuffer with nil produce")
	}
	validatePeriod(period)
	return &Buffer[T, U]{
		parent:  parent,
		produce: produce,
		period:  period,
		out:     events.NewEmitter[U](),
	}
}

// Events returns the node's emitter.
func (b *Buffer[T, U]) Events() *events.Emitter[U] { return b.out }

// Parents returns the single upstream node.
func (b *Buffer[T, U]) Parents() []Node { return []Node{b.parent} }

// Start subscribes the buffer to the parent, launches the flush timer and
// starts the parent. Idempotent.
func (b *Buffer[T, U]) Start() {
	if !b.tryStart() {
		return
	}
	b.parent.Events().Subscribe(b.accept)
	b.tb.Go(b.run)
	b.parent.Start()
}

// Stop terminates the flush timer and waits for it to exit. Elements
// buffered since the last flush are discarded. Stop is safe to call more
// than once but must follow Start.
func (b *Buffer[T, U]) Stop() {
	b.stop.Do(func() {
		b.tb.Kill(nil)
	})
	_ = b.tb.Wait()
}

func (b *Buffer[T, U]) run() error {
	ticker := time.NewTicker(b.period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.flush()
		case <-b.tb.Dying():
			return nil
		}
	}
}

func (b *Buffer[T, U]) flush() {
	b.mu.Lock()
	batch := b.batch
	b.batch = nil
	b.mu.Unlock()
	produced, err := b.produce(batch)
	if err != nil {
		b.out.EmitError(newBufferError(err))
		return
	}
	b.out.EmitResult(produced)
}

func (b *Buffer[T, U]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		b.mu.Lock()
		b.batch = append(b.batch, ev.Value())
		b.mu.Unlock()
	case events.KindError:
		b.out.EmitError(ev.Err())
	case events.KindCompleted:
		b.out.EmitCompleted()
	}
}
