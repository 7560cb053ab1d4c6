package properties

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// ErrNotRegistered is wrapped by Resolve when a path segment has no getter.
var ErrNotRegistered = errors.New("property not registered")

// PathStage is one resolved segment of a property path: a getter over the
// untyped stage object and the static type of the value it yields.
type PathStage struct {
	Property string
	Get      func(any) any
	Result   reflect.Type
}

type registryKey struct {
	owner    reflect.Type
	property string
}

type registryEntry struct {
	get    func(any) any
	result reflect.Type
}

// Registry maps (owner type, property name) pairs to getter functions
// supplied by the host application. Paths resolve against the registered
// result types, so a bad path fails when the graph is built rather than when
// values flow.
type Registry struct {
	mu      sync.RWMutex
	entries map[registryKey]registryEntry
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]registryEntry)}
}

// Register adds a getter for the named property of owner type T. Registering
// the same (type, property) pair again replaces the earlier getter.
func Register[T any, V any](r *Registry, property string, get func(T) V) {
	if property == "" {
		panic("properties: Register with empty property name")
	}
	if get == nil {
		panic("properties: Register with nil getter")
	}
	key := registryKey{
		owner:    reflect.TypeOf((*T)(nil)).Elem(),
		property: property,
	}
	entry := registryEntry{
		get:    func(object any) any { return get(object.(T)) },
		result: reflect.TypeOf((*V)(nil)).Elem(),
	}
	r.mu.Lock()
	r.entries[key] = entry
	r.mu.Unlock()
}

// Getter returns the getter registered for the named property of owner,
// with the static type of the value it yields.
func (r *Registry) Getter(owner reflect.Type, property string) (func(any) any, reflect.Type, bool) {
	r.mu.RLock()
	entry, ok := r.entries[registryKey{owner: owner, property: property}]
	r.mu.RUnlock()
	if !ok {
		return nil, nil, false
	}
	return entry.get, entry.result, true
}

// Resolve validates a dot separated property path rooted at owner and
// returns its stages in walk order. Any segment without a registered getter
// makes the whole path fail with an error wrapping ErrNotRegistered.
func (r *Registry) Resolve(owner reflect.Type, path string) ([]PathStage, error) {
	if owner == nil {
		return nil, errors.New("properties: Resolve with nil owner type")
	}
	if path == "" {
		return nil, errors.New("properties: Resolve with empty path")
	}
	segments := strings.Split(path, ".")
	stages := make([]PathStage, 0, len(segments))
	current := owner
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("properties: path %q has an empty segment", path)
		}
		get, result, ok := r.Getter(current, segment)
		if !ok {
			return nil, fmt.Errorf("properties: %s has no property %q: %w", current, segment, ErrNotRegistered)
		}
		stages = append(stages, PathStage{Property: segment, Get: get, Result: result})
		current = result
	}
	return stages, nil
}
