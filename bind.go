package streams

import (
	"github.com/bassclefstudio/streams/events"
	"github.com/bassclefstudio/streams/nodes"
)

// BindResult registers fn for every result element of s, then starts the
// graph. Pass Params{DeferStart: true} to keep the graph unstarted so more
// callbacks can be bound before the first emission.
func BindResult[T any](s nodes.Stream[T], fn func(T), params ...Params) nodes.Stream[T] {
	if fn == nil {
		panic("streams: BindResult with nil fn")
	}
	s.Events().Subscribe(func(ev events.Event[T]) {
		if ev.IsResult() {
			fn(ev.Value())
		}
	})
	return bindStart(s, params)
}

// BindError registers fn for every error event of s, then starts the graph.
func BindError[T any](s nodes.Stream[T], fn func(error), params ...Params) nodes.Stream[T] {
	if fn == nil {
		panic("streams: BindError with nil fn")
	}
	s.Events().Subscribe(func(ev events.Event[T]) {
		if ev.IsError() {
			fn(ev.Err())
		}
	})
	return bindStart(s, params)
}

// BindComplete registers fn for every completion event of s, then starts
// the graph.
func BindComplete[T any](s nodes.Stream[T], fn func(), params ...Params) nodes.Stream[T] {
	if fn == nil {
		panic("streams: BindComplete with nil fn")
	}
	s.Events().Subscribe(func(ev events.Event[T]) {
		if ev.IsCompleted() {
			fn()
		}
	})
	return bindStart(s, params)
}

func bindStart[T any](s nodes.Stream[T], params []Params) nodes.Stream[T] {
	if !applyParams(params).DeferStart {
		s.Start()
	}
	return s
}
