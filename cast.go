package streams

import "github.com/bassclefstudio/streams/nodes"

// AsAny widens every result element of s to any.
func AsAny[T any](s nodes.Stream[T]) nodes.Stream[any] {
	return nodes.NewMap(s, func(v T) (any, error) {
		return v, nil
	})
}

// As narrows every result element of s to U. An element that is not a U
// panics at the point of emission; use OfType to drop mismatches instead.
func As[U any](s nodes.Stream[any]) nodes.Stream[U] {
	return nodes.NewMap(s, func(v any) (U, error) {
		return v.(U), nil
	})
}

// OfType forwards only the result elements of s that are a U, silently
// dropping the rest.
func OfType[U any](s nodes.Stream[any]) nodes.Stream[U] {
	matches := nodes.NewFilter(s, func(v any) (bool, error) {
		_, ok := v.(U)
		return ok, nil
	})
	return nodes.NewMap(matches, func(v any) (U, error) {
		return v.(U), nil
	})
}
