package node

import (
	"reflect"

	"literal-generator/typedesc"
)

// genStruct writes "Name = value" for every member, in member order.
// Members promoted through a nil embedded pointer are left out.
func (g *Generator) genStruct(d *typedesc.Type, v reflect.Value, depth int) (string, error) {
	name, err := g.structuralName(d)
	if err != nil {
		return "", err
	}

	members := typedesc.MembersFunc(v.Type(), g.rendersWhole)

	parts := make([]string, 0, len(members))
	for _, m := range members {
		field, ok := fieldByIndex(v, m.Index)
		if !ok {
			continue
		}

		text, err := g.generate(field, depth)
		if err != nil {
			return "", err
		}

		parts = append(parts, m.Name+memberAssign+text)
	}

	return braced(name, parts), nil
}

// rendersWhole reports embedded types a converter writes as one value.
func (g *Generator) rendersWhole(rt reflect.Type) bool {
	_, ok := g.registry.Find(rt)

	return ok
}
