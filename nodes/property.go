package nodes

import (
	"sync"

	"github.com/bassclefstudio/streams/events"
)

// Notifier is implemented by element types that announce named property
// changes. OnChanged registers a listener and returns a func that cancels
// the registration. A listener called with an empty property name must treat
// every property as possibly changed.
type Notifier interface {
	OnChanged(listener func(property string)) (cancel func())
}

// Property bridges property change notifications into the graph. Each
// result element from the parent becomes the current object: the node emits
// getter(object) immediately, subscribes to the object's change
// notifications if it implements Notifier, and re-emits getter(object)
// whenever the named property (or everything, on an empty name) is reported
// changed. Replacing the object cancels the previous subscription. Elements
// that do not implement Notifier still produce the immediate emission.
type Property[T any, U any] struct {
	status
	parent   Stream[T]
	property string
	get      GetterFunc[T, U]
	mu       sync.Mutex
	current  T
	primed   bool
	cancel   func()
	out      *events.Emitter[U]
}

// NewProperty constructs a Property bridge over parent for the named
// property. The name and getter are required.
func NewProperty[T any, U any](parent Stream[T], property string, get GetterFunc[T, U]) *Property[T, U] {
	if parent == nil {
		panic("nodes: NewProperty with nil parent")
	}
	if property == "" {
		panic("nodes: NewProperty with empty property name")
	}
	if get == nil {
		panic("nodes: NewProperty with nil getter")
	}
	return &Property[T, U]{
		parent:   parent,
		property: property,
		get:      get,
		out:      events.NewEmitter[U](),
	}
}

// Name returns the observed property name.
func (p *Property[T, U]) Name() string { return p.property }

// Events returns the node's emitter.
func (p *Property[T, U]) Events() *events.Emitter[U] { return p.out }

// Parents returns the single upstream node.
func (p *Property[T, U]) Parents() []Node { return []Node{p.parent} }

// Start subscribes the bridge to the parent and starts it. Idempotent.
func (p *Property[T, U]) Start() {
	if !p.tryStart() {
		return
	}
	p.parent.Events().Subscribe(p.accept)
	p.parent.Start()
}

func (p *Property[T, U]) accept(ev events.Event[T]) {
	switch ev.Kind() {
	case events.KindResult:
		object := ev.Value()
		p.mu.Lock()
		if p.cancel != nil {
			p.cancel()
			p.cancel = nil
		}
		p.current = object
		p.primed = true
		if notifier, ok := any(object).(Notifier); ok {
			p.cancel = notifier.OnChanged(p.onChanged)
		}
		p.mu.Unlock()
		p.out.EmitResult(p.get(object))
	case events.KindError:
		p.out.EmitError(ev.Err())
	case events.KindCompleted:
		p.out.EmitCompleted()
	}
}

func (p *Property[T, U]) onChanged(property string) {
	if property != "" && property != p.property {
		return
	}
	p.mu.Lock()
	object, ok := p.current, p.primed
	p.mu.Unlock()
	if !ok {
		return
	}
	p.out.EmitResult(p.get(object))
}
