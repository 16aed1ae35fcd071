package convert

import (
	"reflect"
	"slices"
	"strings"
)

// Registry is the set of converters used by one serialization call.
// It is read-only once built.
type Registry struct {
	converters map[reflect.Type]Converter
}

// Build merges overrides over the built-in converters. An override for a
// type that already has a converter replaces it; nil entries are ignored.
func Build(overrides ...Converter) *Registry {
	defaults := Defaults()

	r := &Registry{converters: make(map[reflect.Type]Converter, len(defaults)+len(overrides))}
	for _, c := range slices.Concat(defaults, overrides) {
		if c == nil {
			continue
		}

		r.converters[c.Type()] = c
	}

	return r
}

// Find returns the converter registered for exactly rt.
func (r *Registry) Find(rt reflect.Type) (Converter, bool) {
	if r == nil || rt == nil {
		return nil, false
	}

	c, ok := r.converters[rt]

	return c, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.converters)
}

// Types lists the covered types ordered by their Go spelling.
func (r *Registry) Types() []reflect.Type {
	if r == nil {
		return nil
	}

	types := make([]reflect.Type, 0, len(r.converters))
	for rt := range r.converters {
		types = append(types, rt)
	}

	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return types
}
