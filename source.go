package streams

import "github.com/bassclefstudio/streams/nodes"

// Source emits one precomputed value when started.
func Source[T any](value T) nodes.Stream[T] {
	return nodes.NewSource(value)
}

// Defer resolves its parent through factory at start time, letting a graph
// reference itself or a node that has not been constructed yet.
func Defer[T any](factory nodes.FactoryFunc[T]) nodes.Stream[T] {
	return nodes.NewDeferred(factory)
}
