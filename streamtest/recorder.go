// Package streamtest provides test observers for stream graphs.
package streamtest

import (
	"sync"
	"time"

	"github.com/bassclefstudio/streams/events"
)

// EventRecorder records every event it observes, for tests and diagnostics.
//
// EventRecorder is safe under concurrent Record calls.
type EventRecorder[T any] struct {
	mu     sync.Mutex
	events []events.Event[T]
}

// NewEventRecorder constructs an empty EventRecorder.
func NewEventRecorder[T any]() *EventRecorder[T] {
	return &EventRecorder[T]{}
}

// Record appends the event to the recorder. Record is a valid subscriber for
// any emitter of the recorder's element type.
func (r *EventRecorder[T]) Record(ev events.Event[T]) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a snapshot copy of recorded events.
func (r *EventRecorder[T]) Events() []events.Event[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]events.Event[T], len(r.events))
	copy(cp, r.events)
	return cp
}

// Results returns a snapshot copy of all result payloads, in recorded order.
func (r *EventRecorder[T]) Results() []T {
	evs := r.Events()
	out := make([]T, 0, len(evs))
	for _, ev := range evs {
		if ev.IsResult() {
			out = append(out, ev.Value())
		}
	}
	return out
}

// Errs returns a snapshot copy of all error payloads, in recorded order.
func (r *EventRecorder[T]) Errs() []error {
	evs := r.Events()
	out := make([]error, 0, len(evs))
	for _, ev := range evs {
		if ev.IsError() {
			out = append(out, ev.Err())
		}
	}
	return out
}

// Completions returns the number of completion markers recorded.
func (r *EventRecorder[T]) Completions() int {
	count := 0
	for _, ev := range r.Events() {
		if ev.IsCompleted() {
			count++
		}
	}
	return count
}

// Len returns the number of recorded events.
func (r *EventRecorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// WaitLen blocks until at least n events have been recorded or the timeout
// elapses, and reports whether the count was reached. Useful when events
// arrive from other goroutines.
func (r *EventRecorder[T]) WaitLen(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for r.Len() < n {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
	return true
}

// Reset clears the recorder.
func (r *EventRecorder[T]) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
