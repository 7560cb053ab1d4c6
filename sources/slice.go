// Package sources provides leaf streams bridging external inputs into a
// graph.
package sources

import (
	"sync/atomic"

	"github.com/bassclefstudio/streams/events"
	"github.com/bassclefstudio/streams/nodes"
)

// slice is a leaf stream that replays the values of a slice.
type slice[T any] struct {
	started atomic.Bool
	values  []T
	out     *events.Emitter[T]
}

// FromSlice returns a leaf stream that, once started, emits every element of
// values in order as results and then completes. Emission happens
// synchronously inside Start, like a single-value source.
func FromSlice[T any](values []T) nodes.Stream[T] {
	return &slice[T]{values: values, out: events.NewEmitter[T]()}
}

// Events returns the stream's emitter.
func (s *slice[T]) Events() *events.Emitter[T] { return s.out }

// Parents returns nil; the stream is a leaf.
func (s *slice[T]) Parents() []nodes.Node { return nil }

// Started reports whether the stream has been started.
func (s *slice[T]) Started() bool { return s.started.Load() }

// Start replays the slice. Further calls do nothing.
func (s *slice[T]) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	for _, value := range s.values {
		s.out.EmitResult(value)
	}
	s.out.EmitCompleted()
}
