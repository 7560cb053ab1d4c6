package sinks

import (
	"sync"

	"github.com/bassclefstudio/streams/events"
	"github.com/bassclefstudio/streams/nodes"
)

// Collector accumulates the result values a stream emits, in emission
// order. Safe for concurrent emission and reading.
type Collector[T any] struct {
	mu     sync.Mutex
	values []T
}

// Collect subscribes a new Collector to s and returns it. Only result
// values are collected; the stream is not started.
func Collect[T any](s nodes.Stream[T]) *Collector[T] {
	c := &Collector[T]{}
	s.Events().Subscribe(func(ev events.Event[T]) {
		if !ev.IsResult() {
			return
		}
		c.mu.Lock()
		c.values = append(c.values, ev.Value())
		c.mu.Unlock()
	})
	return c
}

// Values returns a copy of the collected values.
func (c *Collector[T]) Values() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.values...)
}

// Len returns the number of collected values.
func (c *Collector[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}
