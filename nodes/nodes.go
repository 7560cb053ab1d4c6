// Package nodes implements the operator nodes a stream graph is built from.
package nodes

import (
	"sync/atomic"

	"github.com/bassclefstudio/streams/events"
)

// Node is the lifecycle surface shared by every node in a stream graph.
type Node interface {
	// Started reports whether Start has been called. The flag is monotonic;
	// a started node never returns to pending.
	Started() bool
	// Start wires the node to its parents and then starts them. Only the
	// first call has any effect. A node subscribes to every parent before
	// starting any of them, so emissions produced synchronously by a
	// parent's own Start are never missed.
	Start()
	// Parents returns the upstream nodes, nil for leaves. A Deferred node
	// reports its parent only after resolution.
	Parents() []Node
}

// Stream is a Node that emits events of element type T.
type Stream[T any] interface {
	Node
	Events() *events.Emitter[T]
}

// status tracks one-way started state.
type status struct {
	started atomic.Bool
}

func (s *status) tryStart() bool { return s.started.CompareAndSwap(false, true) }

// Started reports whether the node has been started.
func (s *status) Started() bool { return s.started.Load() }
