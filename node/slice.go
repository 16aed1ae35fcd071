package node

import (
	"reflect"

	"literal-generator/typedesc"
)

// genSequence writes the elements of a slice or array in order.
// Sequences are exempt from the default constructor check: collection
// initializers only need Add, and arrays have no constructor at all.
func (g *Generator) genSequence(d *typedesc.Type, v reflect.Value, depth int) (string, error) {
	name, err := g.structuralName(d)
	if err != nil {
		return "", err
	}

	leave, err := g.path.Enter(v)
	if err != nil {
		return "", err
	}
	defer leave()

	parts := make([]string, v.Len())
	for i := range parts {
		parts[i], err = g.generate(v.Index(i), depth)
		if err != nil {
			return "", err
		}
	}

	return braced(name, parts), nil
}

// structuralName resolves the name of a type written in initializer form.
func (g *Generator) structuralName(d *typedesc.Type) (string, error) {
	name, err := g.typeName(d)
	if err != nil {
		return "", err
	}

	if d.NoDefaultConstructor && !d.IsSequence() {
		return "", typedesc.NoDefaultConstructor(name)
	}

	return name, nil
}
