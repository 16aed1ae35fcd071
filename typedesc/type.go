// Package typedesc describes types the way the literal target names them:
// namespace, nesting, generic shape, arrays, enumerations and nullable wrappers.
//
// Go reflection cannot express nested types or expose generic arguments, so
// descriptors are explicit values, registered in a Catalog or derived from
// reflect.Type for the common cases.
package typedesc

import (
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // zero value is an invalid descriptor

	KindPlain       // non-generic named type
	KindDefinition  // generic definition with unbound parameters, e.g. List`1
	KindConstructed // generic definition with bound arguments, e.g. List<String>
	KindParameter   // generic parameter of a definition, e.g. T
	KindArray       // single-dimension array, e.g. String[]
	KindEnumeration // enumeration over an integral type
)

// arityMark separates a raw generic type name from its own parameter count.
const arityMark = "`"

// Type is a type descriptor. Descriptors are immutable once built and are
// compared by pointer: two parameters named T are different parameters.
type Type struct {
	Kind      KindEnum
	Namespace string
	// Name is the raw name; generic definitions carry an arity suffix ("List`1").
	Name string

	// Declaring is the enclosing type of a nested type. For a nested
	// definition inside a generic type it is the open enclosing definition.
	Declaring *Type

	// Params are the parameters of a definition: the parameters inherited
	// from a generic enclosing type first, then the type's own.
	Params []*Type

	// Definition and Args describe a constructed type; Args pair with
	// Definition.Params positionally.
	Definition *Type
	Args       []*Type

	// Owner and Position locate a parameter inside its definition.
	Owner    *Type
	Position int

	Elem       *Type // KindArray
	Underlying *Type // KindEnumeration

	// Sequence marks ordered collection definitions such as List`1.
	Sequence bool

	// NoDefaultConstructor marks structural types that cannot be created by
	// an object initializer.
	NoDefaultConstructor bool
}

// NewPlain describes a non-generic type.
func NewPlain(namespace, name string) *Type {
	return &Type{Kind: KindPlain, Namespace: namespace, Name: name}
}

// NewDefinition describes a generic definition with the given parameter names.
// The arity suffix is appended to name.
func NewDefinition(namespace, name string, params ...string) *Type {
	if len(params) == 0 {
		panic("generic definition " + name + " needs at least one parameter")
	}

	d := &Type{
		Kind:      KindDefinition,
		Namespace: namespace,
		Name:      name + arityMark + strconv.Itoa(len(params)),
	}
	d.Params = newParams(d, 0, params)

	return d
}

// NewEnum describes an enumeration over an integral type.
func NewEnum(namespace, name string, underlying *Type) *Type {
	return &Type{Kind: KindEnumeration, Namespace: namespace, Name: name, Underlying: underlying}
}

// ArrayOf describes a single-dimension array of elem.
func ArrayOf(elem *Type) *Type {
	return &Type{Kind: KindArray, Elem: elem}
}

// Nested describes a type declared inside t. When t is generic the nested
// type inherits copies of its parameters as leading parameters, the same way
// the target type system lays them out.
func (t *Type) Nested(name string, params ...string) *Type {
	if t.Kind != KindPlain && t.Kind != KindDefinition {
		panic("only plain types and generic definitions can declare nested types, got " + t.Kind.String())
	}

	n := &Type{
		Kind:      KindPlain,
		Namespace: t.Namespace,
		Name:      name,
		Declaring: t,
	}

	if len(params) > 0 {
		n.Name += arityMark + strconv.Itoa(len(params))
	}

	inherited := make([]string, 0, len(t.Params)+len(params))
	for _, p := range t.Params {
		inherited = append(inherited, p.Name)
	}

	all := append(inherited, params...)
	if len(all) > 0 {
		n.Kind = KindDefinition
		n.Params = newParams(n, 0, all)
	}

	return n
}

// Construct binds args to the parameters of definition t.
// It panics if t is not a definition or the arity does not match.
func (t *Type) Construct(args ...*Type) *Type {
	if t.Kind != KindDefinition {
		panic("cannot construct non-generic type " + t.Name)
	}

	if len(args) != len(t.Params) {
		panic("generic definition " + t.Name + " expects " + strconv.Itoa(len(t.Params)) +
			" arguments, got " + strconv.Itoa(len(args)))
	}

	return &Type{
		Kind:       KindConstructed,
		Namespace:  t.Namespace,
		Name:       t.Name,
		Definition: t,
		Args:       args,
		Sequence:   t.Sequence,
	}
}

// WithoutDefaultConstructor returns a copy of t flagged as not constructible.
func (t *Type) WithoutDefaultConstructor() *Type {
	c := *t
	c.NoDefaultConstructor = true

	return &c
}

func newParams(owner *Type, offset int, names []string) []*Type {
	params := make([]*Type, len(names))
	for i, name := range names {
		params[i] = &Type{Kind: KindParameter, Name: name, Owner: owner, Position: offset + i}
	}

	return params
}

// GenericDefinition returns the open definition behind t, or t itself.
func (t *Type) GenericDefinition() *Type {
	if t.Kind == KindConstructed {
		return t.Definition
	}

	return t
}

// DeclaringType returns the enclosing type, looking through constructed types.
func (t *Type) DeclaringType() *Type {
	return t.GenericDefinition().Declaring
}

func (t *Type) IsGeneric() bool {
	return t.Kind == KindDefinition || t.Kind == KindConstructed
}

func (t *Type) IsParameter() bool { return t.Kind == KindParameter }
func (t *Type) IsArray() bool     { return t.Kind == KindArray }
func (t *Type) IsEnum() bool      { return t.Kind == KindEnumeration }

// IsSequence reports arrays and ordered collection types.
func (t *Type) IsSequence() bool {
	return t.Kind == KindArray || t.GenericDefinition().Sequence
}

// IsNullable reports a constructed System.Nullable<T>.
func (t *Type) IsNullable() bool {
	return t.Kind == KindConstructed && t.Definition == Nullable
}

// SimpleName is the raw name without its arity suffix.
func (t *Type) SimpleName() string {
	name, _, _ := strings.Cut(t.Name, arityMark)

	return name
}

// String is the unresolved diagnostic form of t, e.g. "System.Collections.Generic.List`1[T]".
// Use the naming package for literal names.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case KindParameter:
		return t.Name
	case KindArray:
		return t.Elem.String() + "[]"
	}

	var sb strings.Builder
	if d := t.DeclaringType(); d != nil {
		sb.WriteString(d.String())
		sb.WriteString("+")
	} else if t.Namespace != "" {
		sb.WriteString(t.Namespace)
		sb.WriteString(".")
	}

	sb.WriteString(t.Name)

	var list []*Type
	switch t.Kind {
	case KindDefinition:
		list = t.Params
	case KindConstructed:
		list = t.Args
	}

	if len(list) > 0 {
		sb.WriteString("[")
		for i, a := range list {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString("]")
	}

	return sb.String()
}
