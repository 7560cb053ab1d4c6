package nodes

import "github.com/bassclefstudio/streams/events"

// Concat interleaves the events of every parent into one stream, verbatim
// and in arrival order. The node subscribes to all parents before starting
// any of them, so synchronous emissions from an early parent's Start cannot
// be missed while later parents are still unwired.
type Concat[T any] struct {
	status
	parents []Stream[T]
	out     *events.Emitter[T]
}

// NewConcat constructs a Concat over the given parents. At least one parent
// is required.
func NewConcat[T any](parents ...Stream[T]) *Concat[T] {
	if len(parents) == 0 {
		panic("nodes: NewConcat with no parents")
	}
	for _, parent := range parents {
		if parent == nil {
			panic("nodes: NewConcat with nil parent")
		}
	}
	return &Concat[T]{parents: parents, out: events.NewEmitter[T]()}
}

// Events returns the node's emitter.
func (c *Concat[T]) Events() *events.Emitter[T] { return c.out }

// Parents returns the upstream nodes.
func (c *Concat[T]) Parents() []Node {
	nodes := make([]Node, len(c.parents))
	for i, parent := range c.parents {
		nodes[i] = parent
	}
	return nodes
}

// Start subscribes to every parent and then starts each one. Idempotent.
func (c *Concat[T]) Start() {
	if !c.tryStart() {
		return
	}
	for _, parent := range c.parents {
		parent.Events().Subscribe(c.out.Emit)
	}
	for _, parent := range c.parents {
		parent.Start()
	}
}
