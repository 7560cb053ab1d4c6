package nodes

import (
	"sync"

	"github.com/bassclefstudio/streams/events"
)

// Merge joins N parents by tracking the latest result seen from each one.
// Until every parent has produced at least once nothing is emitted; from
// then on, each arrival re-emits the combination of all current slots, with
// the slot slice ordered like the parents. Errors and completion from any
// parent pass through.
type Merge[T any, U any] struct {
	status
	parents []Stream[T]
	combine ProduceFunc[T, U]
	mu      sync.Mutex
	latest  []T
	seen    []bool
	ready   bool
	out     *events.Emitter[U]
}

// NewMerge constructs a Merge over the given parents. At least one parent is
// required.
func NewMerge[T any, U any](combine ProduceFunc[T, U], parents ...Stream[T]) *Merge[T, U] {
	if combine == nil {
		panic("nodes: NewMerge with nil combine")
	}
	if len(parents) == 0 {
		panic("nodes: NewMerge with no parents")
	}
	for _, parent := range parents {
		if parent == nil {
			panic("nodes: NewMerge with nil parent")
		}
	}
	return &Merge[T, U]{
		parents: parents,
		combine: combine,
		latest:  make([]T, len(parents)),
		seen:    make([]bool, len(parents)),
		out:     events.NewEmitter[U](),
	}
}

// Events returns the node's emitter.
func (m *Merge[T, U]) Events() *events.Emitter[U] { return m.out }

// Parents returns the upstream nodes.
func (m *Merge[T, U]) Parents() []Node {
	nodes := make([]Node, len(m.parents))
	for i, parent := range m.parents {
		nodes[i] = parent
	}
	return nodes
}

// Start subscribes a slot updater to every parent and then starts each one.
// Idempotent.
func (m *Merge[T, U]) Start() {
	if !m.tryStart() {
		return
	}
	for i, parent := range m.parents {
		parent.Events().Subscribe(func(ev events.Event[T]) {
			m.accept(i, ev)
		})
	}
	for _, parent := range m.parents {
		parent.Start()
	}
}

func (m *Merge[T, U]) accept(slot int, ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		m.mu.Lock()
		m.latest[slot] = ev.Value()
		if !m.seen[slot] {
			m.seen[slot] = true
			m.ready = m.allSeen()
		}
		if !m.ready {
			m.mu.Unlock()
			return
		}
		slots := make([]T, len(m.latest))
		copy(slots, m.latest)
		m.mu.Unlock()
		m.emit(slots)
	case events.KindError:
		m.out.EmitError(ev.Err())
	case events.KindCompleted:
		m.out.EmitCompleted()
	}
}

func (m *Merge[T, U]) allSeen() bool {
	for _, seen := range m.seen {
		if !seen {
			return false
		}
	}
	return true
}

func (m *Merge[T, U]) emit(slots []T) {
	combined, err := m.combine(slots)
	if err != nil {
		m.out.EmitError(newMergeError(err))
		return
	}
	m.out.EmitResult(combined)
}
