// Package sinks provides terminal helpers bridging a stream's emissions out
// of the graph.
package sinks

import (
	"github.com/bassclefstudio/streams/events"
	"github.com/bassclefstudio/streams/nodes"
)

// ToChannel subscribes a forwarder that sends every result value to sender.
// The send happens synchronously on the emitting goroutine, so sender should
// be buffered or drained while the graph runs. The stream is not started and
// the channel is never closed; completion markers are available through
// ToEventChannel.
func ToChannel[T any](s nodes.Stream[T], sender chan<- T) {
	if sender == nil {
		panic("sinks: ToChannel with nil channel")
	}
	s.Events().Subscribe(func(ev events.Event[T]) {
		if ev.IsResult() {
			sender <- ev.Value()
		}
	})
}

// ToEventChannel subscribes a forwarder that sends every event, whatever its
// tag, to sender. The send happens synchronously on the emitting goroutine.
// The stream is not started and the channel is never closed.
func ToEventChannel[T any](s nodes.Stream[T], sender chan<- events.Event[T]) {
	if sender == nil {
		panic("sinks: ToEventChannel with nil channel")
	}
	s.Events().Subscribe(func(ev events.Event[T]) {
		sender <- ev
	})
}
