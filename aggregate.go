package streams

import "github.com/bassclefstudio/streams/nodes"

// Aggregate folds the result elements of s into a running accumulator
// seeded with seed, emitting every intermediate accumulator value.
func Aggregate[T any, U any](s nodes.Stream[T], seed U, fn nodes.AccumulateFunc[U, T]) nodes.Stream[U] {
	return nodes.NewFold(s, seed, fn)
}

// AggregateParallel folds concurrently: each step reads the accumulator when
// it starts and writes it back when it finishes, so overlapping steps race
// and the last completion wins.
func AggregateParallel[T any, U any](s nodes.Stream[T], seed U, fn nodes.AsyncAccumulateFunc[U, T], params ...Params) nodes.Stream[U] {
	p := applyParams(params)
	return nodes.NewParallelFold(s, seed, fn, nodes.Params{Ctx: p.Ctx})
}
