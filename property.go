package streams

import (
	"reflect"

	"github.com/bassclefstudio/streams/nodes"
	"github.com/bassclefstudio/streams/properties"
)

// Property emits get(object) for every object element of s, and again
// whenever the object reports the named property changed.
func Property[T any, U any](s nodes.Stream[T], property string, get nodes.GetterFunc[T, U]) nodes.Stream[U] {
	return nodes.NewProperty(s, property, get)
}

// PropertyPath bridges a dot delimited chain of registered properties,
// walking from the element type of s through each named property in turn.
// The path is validated against the registry up front: a segment without a
// registered getter fails here, not when values flow.
func PropertyPath[T any](s nodes.Stream[T], registry *properties.Registry, path string) (nodes.Stream[any], error) {
	if registry == nil {
		panic("streams: PropertyPath with nil registry")
	}
	stages, err := registry.Resolve(reflect.TypeOf((*T)(nil)).Elem(), path)
	if err != nil {
		return nil, err
	}
	out := AsAny(s)
	for _, stage := range stages {
		out = nodes.NewProperty(out, stage.Property, stage.Get)
	}
	return out, nil
}
