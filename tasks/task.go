// Package tasks provides a small future type for asynchronous computations
// and helpers for awaiting groups of them.
package tasks

import "context"

// Task is a single asynchronous computation resolving to one value or one
// error. A Task resolves exactly once and its outcome never changes.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn on its own goroutine and returns a Task for its outcome.
func Go[T any](fn func() (T, error)) *Task[T] {
	if fn == nil {
		panic("tasks: Go with nil func")
	}
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.value, t.err = fn()
	}()
	return t
}

// Completed returns an already resolved Task carrying value.
func Completed[T any](value T) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), value: value}
	close(t.done)
	return t
}

// Failed returns an already resolved Task carrying err.
func Failed[T any](err error) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Done returns a channel that is closed once the task has resolved.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Resolved reports whether the task has finished.
func (t *Task[T]) Resolved() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the task resolves or ctx is cancelled, whichever comes
// first. Cancellation abandons the wait, not the computation.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
