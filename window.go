package streams

import "github.com/bassclefstudio/streams/nodes"

// Window collects the most recent size result elements of s and produces one
// value per full window, oldest element first. The window slides by one
// element per input, so n inputs yield n-size+1 emissions.
func Window[T any, U any](s nodes.Stream[T], size int, produce nodes.ProduceFunc[T, U]) nodes.Stream[U] {
	return nodes.NewTake(s, produce, nodes.Params{Size: size})
}

// Pairwise produces a value from every adjacent pair of result elements.
func Pairwise[T any, U any](s nodes.Stream[T], fn func(previous T, current T) (U, error)) nodes.Stream[U] {
	if fn == nil {
		panic("streams: Pairwise with nil fn")
	}
	return nodes.NewTake(s, func(window []T) (U, error) {
		return fn(window[0], window[1])
	})
}
