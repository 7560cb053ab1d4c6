package streams

import "github.com/bassclefstudio/streams/nodes"

// Select transforms every result element of s with fn. Error and completion
// events pass through untouched.
func Select[T any, U any](s nodes.Stream[T], fn nodes.TransformFunc[T, U]) nodes.Stream[U] {
	return nodes.NewMap(s, fn)
}

// SelectParallel transforms every result element of s with fn, running each
// call concurrently. Output order follows completion order, not arrival
// order.
func SelectParallel[T any, U any](s nodes.Stream[T], fn nodes.AsyncTransformFunc[T, U], params ...Params) nodes.Stream[U] {
	p := applyParams(params)
	return nodes.NewParallelMap(s, fn, nodes.Params{Ctx: p.Ctx})
}
