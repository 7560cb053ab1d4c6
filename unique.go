package streams

import (
	"reflect"

	"github.com/bassclefstudio/streams/nodes"
)

// Unique drops result elements equal to the previously forwarded element.
// The first element always passes.
func Unique[T comparable](s nodes.Stream[T]) nodes.Stream[T] {
	return nodes.NewDistinct(s, func(current T, previous T) (bool, error) {
		return current != previous, nil
	})
}

// UniqueFunc drops result elements the include function rejects against the
// previously forwarded element.
func UniqueFunc[T any](s nodes.Stream[T], include nodes.IncludeFunc[T]) nodes.Stream[T] {
	return nodes.NewDistinct(s, include)
}

// Equatable is implemented by element types that carry their own equality.
type Equatable[T any] interface {
	Equal(other T) bool
}

// UniqueEqual drops result elements that report themselves equal to the
// previously forwarded element. Two nil elements are equal; a nil element
// never equals a non-nil one.
func UniqueEqual[T Equatable[T]](s nodes.Stream[T]) nodes.Stream[T] {
	return nodes.NewDistinct(s, func(current T, previous T) (bool, error) {
		return !equatableEqual(current, previous), nil
	})
}

func equatableEqual[T Equatable[T]](a T, b T) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	return a.Equal(b)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
