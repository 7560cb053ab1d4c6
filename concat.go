package streams

import "github.com/bassclefstudio/streams/nodes"

// Concat forwards every event from every parent in arrival order, results,
// errors and completions alike.
func Concat[T any](parents ...nodes.Stream[T]) nodes.Stream[T] {
	return nodes.NewConcat(parents...)
}
