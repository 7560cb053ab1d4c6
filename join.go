package streams

import "github.com/bassclefstudio/streams/nodes"

// Join combines the latest elements of two parents with fn. Emission starts
// once both parents have produced at least one element; from then on every
// element from either side yields one combined output.
func Join[T any, U any](left nodes.Stream[T], right nodes.Stream[T], fn func(left T, right T) (U, error)) nodes.Stream[U] {
	if fn == nil {
		panic("streams: Join with nil fn")
	}
	return nodes.NewMerge(func(latest []T) (U, error) {
		return fn(latest[0], latest[1])
	}, left, right)
}

// JoinAll combines the latest element of every parent with combine, in
// parent construction order, once all parents have produced at least one
// element.
func JoinAll[T any, U any](combine nodes.ProduceFunc[T, U], parents ...nodes.Stream[T]) nodes.Stream[U] {
	return nodes.NewMerge(combine, parents...)
}
