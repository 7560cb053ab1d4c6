package nodes

import "github.com/bassclefstudio/streams/events"

// Source is a leaf node holding one precomputed value. Starting it emits
// that value as a single result, synchronously, on the starting goroutine.
// Downstream nodes subscribe before starting their parents, so the emission
// is observed even though it happens inside Start.
type Source[T any] struct {
	status
	value T
	out   *events.Emitter[T]
}

// NewSource constructs a Source holding value.
func NewSource[T any](value T) *Source[T] {
	return &Source[T]{value: value, out: events.NewEmitter[T]()}
}

// Events returns the node's emitter.
func (s *Source[T]) Events() *events.Emitter[T] { return s.out }

// Parents returns nil; a Source is a leaf.
func (s *Source[T]) Parents() []Node { return nil }

// Start emits the held value once. Further calls do nothing.
func (s *Source[T]) Start() {
	if !s.tryStart() {
		return
	}
	s.out.EmitResult(s.value)
}
