package node

import (
	"reflect"
	"strings"
)

const (
	memberSeparator = ",\n"
	memberAssign    = " = "
)

// braced writes the initializer form "new <name>\n{\n<body>\n}".
func braced(name string, parts []string) string {
	var sb strings.Builder

	sb.WriteString("new ")
	sb.WriteString(name)
	sb.WriteString("\n{\n")
	sb.WriteString(strings.Join(parts, memberSeparator))
	sb.WriteString("\n}")

	return sb.String()
}

// concrete unwraps interfaces down to the dynamic value.
func concrete(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	default:
		return false
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
}

// fieldByIndex is reflect.Value.FieldByIndex that reports false instead of
// panicking when an embedded pointer on the way is nil.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v, true
}
