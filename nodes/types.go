package nodes

import "context"

// TransformFunc is a user defined function mapping one element to another.
type TransformFunc[T any, U any] func(T) (U, error)

// AsyncTransformFunc is a user defined transform run on its own goroutine.
type AsyncTransformFunc[T any, U any] func(context.Context, T) (U, error)

// PredicateFunc is a user defined function deciding whether to keep an element.
type PredicateFunc[T any] func(T) (bool, error)

// AccumulateFunc is a user defined function folding an element into an accumulator.
type AccumulateFunc[U any, T any] func(U, T) (U, error)

// AsyncAccumulateFunc is a user defined fold step run on its own goroutine.
type AsyncAccumulateFunc[U any, T any] func(context.Context, U, T) (U, error)

// ProduceFunc is a user defined function reducing a window of elements to one value.
type ProduceFunc[T any, U any] func([]T) (U, error)

// IncludeFunc is a user defined function deciding whether an element differs
// enough from the previously forwarded one to be forwarded itself.
type IncludeFunc[T any] func(current T, previous T) (bool, error)

// FactoryFunc is a user defined function producing a stream on demand.
type FactoryFunc[T any] func() Stream[T]

// GetterFunc is a user defined function reading a property off an element.
type GetterFunc[T any, U any] func(T) U
