package streams

import "github.com/bassclefstudio/streams/nodes"

// Where forwards only the result elements of s that satisfy pred. Rejected
// elements are dropped without any emission.
func Where[T any](s nodes.Stream[T], pred nodes.PredicateFunc[T]) nodes.Stream[T] {
	return nodes.NewFilter(s, pred)
}
