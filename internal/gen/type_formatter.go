package gen

import (
	"go/types"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"literal-generator/internal/analyze"
)

// well-known named types with built-in descriptors, keyed by "path.Name"
var builtinNamed = map[string]string{
	"time.Time":                         "typedesc.DateTime",
	"github.com/google/uuid.UUID":       "typedesc.Guid",
	"literal-generator/primitive.Char": "typedesc.Char",
}

// basicDescriptor maps a basic Go type to the expression of its built-in descriptor.
func basicDescriptor(b *types.Basic) (string, bool) {
	switch b.Kind() {
	default:
		return "", false
	case types.Bool:
		return "typedesc.Boolean", true
	case types.Int8:
		return "typedesc.SByte", true
	case types.Uint8:
		return "typedesc.Byte", true
	case types.Int16:
		return "typedesc.Int16", true
	case types.Uint16:
		return "typedesc.UInt16", true
	case types.Int32:
		return "typedesc.Int32", true
	case types.Uint32:
		return "typedesc.UInt32", true
	case types.Int, types.Int64:
		return "typedesc.Int64", true
	case types.Uint, types.Uint64:
		return "typedesc.UInt64", true
	case types.Uintptr:
		return "typedesc.UIntPtr", true
	case types.Float32:
		return "typedesc.Single", true
	case types.Float64:
		return "typedesc.Double", true
	case types.String:
		return "typedesc.String", true
	}
}

// descriptorExpr returns a Go expression evaluating to the descriptor of t,
// following the same rules as the catalog's derivation.
func (g *Generator) descriptorExpr(t types.Type) (string, error) {
	switch tt := t.(type) {
	case *types.Basic:
		if expr, ok := basicDescriptor(tt); ok {
			return expr, nil
		}

	case *types.Alias:
		return g.descriptorExpr(types.Unalias(tt))

	case *types.Named:
		return g.namedDescriptor(tt)

	case *types.Pointer:
		elem, err := g.descriptorExpr(tt.Elem())
		if err != nil {
			return "", err
		}

		if isValueType(tt.Elem()) {
			return "typedesc.NullableOf(" + elem + ")", nil
		}

		return elem, nil

	case *types.Slice:
		elem, err := g.descriptorExpr(tt.Elem())
		if err != nil {
			return "", err
		}

		return "typedesc.ListOf(" + elem + ")", nil

	case *types.Array:
		elem, err := g.descriptorExpr(tt.Elem())
		if err != nil {
			return "", err
		}

		return "typedesc.ArrayOf(" + elem + ")", nil

	case *types.Map:
		key, err := g.descriptorExpr(tt.Key())
		if err != nil {
			return "", err
		}

		value, err := g.descriptorExpr(tt.Elem())
		if err != nil {
			return "", err
		}

		return "typedesc.DictionaryOf(" + key + ", " + value + ")", nil

	case *types.Interface:
		if tt.Empty() {
			return "typedesc.Object", nil
		}
	}

	return "", errors.Newf("no descriptor for %s", t)
}

func (g *Generator) namedDescriptor(named *types.Named) (string, error) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// error and comparable
		return "", errors.Newf("no descriptor for %s", named)
	}

	if expr, ok := builtinNamed[obj.Pkg().Path()+"."+obj.Name()]; ok {
		return expr, nil
	}

	if named.TypeArgs().Len() > 0 {
		return g.instanceVar(named)
	}

	id := analyze.TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
	if v, ok := g.vars[id]; ok {
		return v, nil
	}

	if b, ok := named.Underlying().(*types.Basic); ok && b.Info()&types.IsInteger == 0 {
		return g.descriptorExpr(b)
	}

	return "", errors.Newf("%s is not described by this package", id)
}

// instanceVar declares a var for a generic instance of this package and
// registers it, returning the var name.
func (g *Generator) instanceVar(named *types.Named) (string, error) {
	key := types.TypeString(named, nil)
	if v, ok := g.instVars[key]; ok {
		return v, nil
	}

	origin := named.Origin().Obj()
	id := analyze.TypeID{PkgPath: origin.Pkg().Path(), Name: origin.Name()}

	def, ok := g.vars[id]
	if !ok {
		return "", errors.Newf("generic %s is not described by this package", id)
	}

	args := make([]string, named.TypeArgs().Len())
	for i := range args {
		expr, err := g.descriptorExpr(named.TypeArgs().At(i))
		if err != nil {
			return "", errors.Wrapf(err, "argument %d of %s", i, key)
		}

		args[i] = expr
	}

	varName := def + "Instance" + strconv.Itoa(len(g.instVars)+1)
	g.instVars[key] = varName

	expr := def + ".Construct(" + strings.Join(args, ", ") + ")"
	g.data.Constructed = append(g.data.Constructed, varSpec{Var: varName, Expr: expr})
	g.data.Registrations = append(g.data.Registrations, registration{
		GoType: g.stringer.TypeString(named),
		Var:    varName,
	})

	return varName, nil
}

// isValueType reports types whose pointers describe as nullable wrappers.
func isValueType(t types.Type) bool {
	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil {
			switch builtinNamed[obj.Pkg().Path()+"."+obj.Name()] {
			case "typedesc.DateTime", "typedesc.Guid", "typedesc.Char":
				return true
			}
		}
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsString == 0
}
