package streams

import (
	"time"

	"github.com/bassclefstudio/streams/nodes"
)

// Buffer collects the result elements of s for period and produces one value
// per elapsed period, empty periods included. The returned node owns a timer
// that runs until its Stop method is called.
func Buffer[T any, U any](s nodes.Stream[T], period time.Duration, produce nodes.ProduceFunc[T, U]) *nodes.Buffer[T, U] {
	return nodes.NewBuffer(s, period, produce)
}

// BufferFirst emits the first element seen in each period, or the zero value
// for an empty period.
func BufferFirst[T any](s nodes.Stream[T], period time.Duration) *nodes.Buffer[T, T] {
	return nodes.NewBuffer(s, period, First[T])
}

// BufferLast emits the last element seen in each period, or the zero value
// for an empty period.
func BufferLast[T any](s nodes.Stream[T], period time.Duration) *nodes.Buffer[T, T] {
	return nodes.NewBuffer(s, period, Last[T])
}
