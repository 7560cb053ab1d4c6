package streams

import "golang.org/x/exp/constraints"

// First returns the first value of a window, or the zero value when the
// window is empty.
func First[T any](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, nil
	}
	return values[0], nil
}

// Last returns the last value of a window, or the zero value when the
// window is empty.
func Last[T any](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, nil
	}
	return values[len(values)-1], nil
}

// Sum adds up the values of a window.
func Sum[T constraints.Integer | constraints.Float](values []T) (T, error) {
	var total T
	for _, v := range values {
		total += v
	}
	return total, nil
}

// Min returns the smallest value of a window, or the zero value when the
// window is empty.
func Min[T constraints.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, nil
	}
	least := values[0]
	for _, v := range values[1:] {
		if v < least {
			least = v
		}
	}
	return least, nil
}

// Max returns the largest value of a window, or the zero value when the
// window is empty.
func Max[T constraints.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, nil
	}
	most := values[0]
	for _, v := range values[1:] {
		if v > most {
			most = v
		}
	}
	return most, nil
}
