package node

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"literal-generator/typedesc"
)

// visit identifies a reference on the current path. The type is part of the
// key: a struct and its first field share an address.
type visit struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// Dealer tracks the pointers, maps and slices on the path from the root to
// the value being written. Meeting one of them again is a cycle.
type Dealer struct {
	onPath map[visit]struct{}
}

// Enter marks v as on the path. The returned func takes it off again.
// Values that cannot form a cycle are not tracked.
func (d *Dealer) Enter(v reflect.Value) (leave func(), err error) {
	key, ok := visitOf(v)
	if !ok {
		return func() {}, nil
	}

	if d.onPath == nil {
		d.onPath = make(map[visit]struct{})
	}

	if _, exists := d.onPath[key]; exists {
		return nil, errors.WithHint(
			errors.Wrapf(typedesc.ErrCyclicGraph, "%s revisited", v.Type()),
			"break the cycle or register a converter for the type",
		)
	}

	d.onPath[key] = struct{}{}

	return func() { delete(d.onPath, key) }, nil
}

func visitOf(v reflect.Value) (visit, bool) {
	switch v.Kind() {
	default:
		return visit{}, false
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return visit{}, false
		}

		return visit{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.Len() == 0 {
			return visit{}, false
		}

		return visit{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}, true
	}
}
