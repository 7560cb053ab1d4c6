// Package events defines the tagged value type carried by every stream and
// the multicast emitter that delivers it to subscribers.
package events

import "fmt"

// Kind represents the tag of an Event.
type Kind int

const (
	// KindResult tags an Event carrying a successfully produced value.
	KindResult Kind = iota
	// KindError tags an Event carrying a processing failure.
	KindError
	// KindCompleted tags an Event signalling that no further values follow.
	KindCompleted
)

func (k Kind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindError:
		return "error"
	case KindCompleted:
		return "completed"
	}
	return "unknown"
}

// Event is a three-state tagged value: a Result carrying a payload, an Error
// carrying a failure, or a Completed marker carrying nothing. The payload
// accessors enforce the tag; reading the wrong payload is a programmer error
// and panics immediately rather than returning a zero value.
type Event[T any] struct {
	kind  Kind
	value T
	err   error
}

// Result returns an Event carrying a successfully produced value.
func Result[T any](value T) Event[T] {
	return Event[T]{kind: KindResult, value: value}
}

// Error returns an Event carrying a processing failure. err must be non-nil.
func Error[T any](err error) Event[T] {
	if err == nil {
		panic("events: Error event with nil error")
	}
	return Event[T]{kind: KindError, err: err}
}

// Completed returns an Event signalling the end of a finite stream.
func Completed[T any]() Event[T] {
	return Event[T]{kind: KindCompleted}
}

// Kind returns the tag of the event.
func (e Event[T]) Kind() Kind { return e.kind }

// IsResult reports whether the event carries a value.
func (e Event[T]) IsResult() bool { return e.kind == KindResult }

// IsError reports whether the event carries a failure.
func (e Event[T]) IsError() bool { return e.kind == KindError }

// IsCompleted reports whether the event marks the end of the stream.
func (e Event[T]) IsCompleted() bool { return e.kind == KindCompleted }

// Value returns the payload of a result event. It panics if the event is not
// tagged KindResult.
func (e Event[T]) Value() T {
	if e.kind != KindResult {
		panic(fmt.Sprintf("events: Value read on %s event", e.kind))
	}
	return e.value
}

// Err returns the failure of an error event. It panics if the event is not
// tagged KindError.
func (e Event[T]) Err() error {
	if e.kind != KindError {
		panic(fmt.Sprintf("events: Err read on %s event", e.kind))
	}
	return e.err
}

func (e Event[T]) String() string {
	switch e.kind {
	case KindResult:
		return fmt.Sprintf("Result(%v)", e.value)
	case KindError:
		return fmt.Sprintf("Error(%v)", e.err)
	default:
		return "Completed"
	}
}
