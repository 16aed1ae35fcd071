package node

import (
	"reflect"
	"strings"

	"literal-generator/primitive"
	"literal-generator/typedesc"
)

// genEnum writes an enumeration through its integral value: "(T)1", "(T)(-1)".
func (g *Generator) genEnum(d *typedesc.Type, v reflect.Value) (string, error) {
	name, err := g.typeName(d)
	if err != nil {
		return "", err
	}

	integral, ok := primitive.Format(v)
	if !ok {
		return "", typedesc.UnsupportedType(v.Type().String())
	}

	if strings.HasPrefix(integral, "-") {
		integral = "(" + integral + ")"
	}

	return "(" + name + ")" + integral, nil
}
