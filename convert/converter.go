// Package convert holds the per-type literal renderers consulted before a
// value is serialized structurally.
package convert

import (
	"reflect"

	"literal-generator/typedesc"
)

// Converter renders values of exactly one Go type as literal text.
// The returned text is used verbatim.
type Converter interface {
	Type() reflect.Type
	Convert(d *typedesc.Type, v reflect.Value) (string, error)
}

// RenderFunc renders v, described by d. d is nil when the value's type has
// no descriptor of its own.
type RenderFunc func(d *typedesc.Type, v reflect.Value) (string, error)

// Func is a Converter backed by a function.
type Func struct {
	// Name identifies the converter in logs, e.g. "fixtures.MoneyLiteral".
	Name string

	rt     reflect.Type
	render RenderFunc
}

// New creates a converter for rt.
func New(rt reflect.Type, render RenderFunc) *Func {
	if rt == nil || render == nil {
		panic("converter needs a type and a render function")
	}

	return &Func{Name: rt.String(), rt: rt, render: render}
}

// For creates a converter for T from a plain function.
func For[T any](fn func(T) string) *Func {
	return New(reflect.TypeFor[T](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
		return fn(v.Interface().(T)), nil
	})
}

func (f *Func) Type() reflect.Type { return f.rt }

func (f *Func) Convert(d *typedesc.Type, v reflect.Value) (string, error) {
	return f.render(d, v)
}
