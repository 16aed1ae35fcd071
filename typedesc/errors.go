package typedesc

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrNoDefaultConstructor       = errors.New("type has no default constructor")
	ErrUnresolvedGenericParameter = errors.New("unresolved generic parameter")
	ErrUnsupportedNesting         = errors.New("type nesting deeper than two levels is not supported")
	ErrUnsupportedType            = errors.New("type cannot be written as a literal")
	ErrCyclicGraph                = errors.New("object graph contains a cycle")
	ErrDepthExceeded              = errors.New("object graph exceeds the maximum depth")
	ErrDuplicateRegistration      = errors.New("type is already registered with a different descriptor")
)

// NoDefaultConstructor reports a structural type that cannot be built from an initializer.
func NoDefaultConstructor(typeName string) error {
	return errors.WithHint(
		errors.Wrapf(ErrNoDefaultConstructor, "%s", typeName),
		"register a converter for the type, or describe it without NoDefaultConstructor",
	)
}

// UnresolvedGenericParameter reports a parameter with no concrete binding.
func UnresolvedGenericParameter(typeName string) error {
	return errors.WithHint(
		errors.Wrapf(ErrUnresolvedGenericParameter, "%s", typeName),
		"register the constructed type in the catalog so every parameter has a bound argument",
	)
}

// UnsupportedNesting reports a type nested in a type nested in a type.
func UnsupportedNesting(typeName string) error {
	return errors.WithHint(
		errors.Wrapf(ErrUnsupportedNesting, "%s", typeName),
		"register a converter for the type, or flatten the declaring types",
	)
}

// UnsupportedType reports a Go type with no literal form.
func UnsupportedType(typeName string) error {
	return errors.WithHint(
		errors.Wrapf(ErrUnsupportedType, "%s", typeName),
		"register a converter for the type",
	)
}
