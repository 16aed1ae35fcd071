package node

import (
	"cmp"
	"reflect"
	"slices"

	"literal-generator/typedesc"
)

type entry struct {
	key, value string
}

// genMap writes "{key, value}" entries ordered by the key text, since map
// iteration order is random.
func (g *Generator) genMap(d *typedesc.Type, v reflect.Value, depth int) (string, error) {
	name, err := g.structuralName(d)
	if err != nil {
		return "", err
	}

	leave, err := g.path.Enter(v)
	if err != nil {
		return "", err
	}
	defer leave()

	entries := make([]entry, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		var e entry

		if e.key, err = g.generate(iter.Key(), depth); err != nil {
			return "", err
		}

		if e.value, err = g.generate(iter.Value(), depth); err != nil {
			return "", err
		}

		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(cmp.Compare(a.key, b.key), cmp.Compare(a.value, b.value))
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = "{" + e.key + ", " + e.value + "}"
	}

	return braced(name, parts), nil
}
