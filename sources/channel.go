package sources

import (
	"context"
	"sync/atomic"

	"github.com/bassclefstudio/streams/events"
	"github.com/bassclefstudio/streams/nodes"
)

// channelSource is a leaf stream pumping a Go channel into the graph.
type channelSource[T any] struct {
	started  atomic.Bool
	ctx      context.Context
	receiver <-chan T
	out      *events.Emitter[T]
}

// FromChannel returns a leaf stream that, once started, pumps every value
// received on the channel into the graph from a dedicated goroutine. The
// stream completes when the channel closes or ctx is cancelled; downstream
// processing runs on the pump goroutine.
func FromChannel[T any](ctx context.Context, receiver <-chan T) nodes.Stream[T] {
	if receiver == nil {
		panic("sources: FromChannel with nil channel")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &channelSource[T]{ctx: ctx, receiver: receiver, out: events.NewEmitter[T]()}
}

// Events returns the stream's emitter.
func (c *channelSource[T]) Events() *events.Emitter[T] { return c.out }

// Parents returns nil; the stream is a leaf.
func (c *channelSource[T]) Parents() []nodes.Node { return nil }

// Started reports whether the stream has been started.
func (c *channelSource[T]) Started() bool { return c.started.Load() }

// Start launches the pump goroutine. Further calls do nothing.
func (c *channelSource[T]) Start() {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	go c.pump()
}

func (c *channelSource[T]) pump() {
	defer c.out.EmitCompleted()
	for {
		select {
		case <-c.ctx.Done():
			return
		case value, ok := <-c.receiver:
			if !ok {
				return
			}
			c.out.EmitResult(value)
		}
	}
}
