// Package naming resolves type descriptors into the fully qualified names
// used in generated literals, substituting generic parameters with the
// arguments bound to them.
package naming

import (
	"strings"

	"go.uber.org/zap"

	"literal-generator/typedesc"
)

// maxDeclaringDepth is the deepest supported chain of declaring types:
// a type nested in a type.
const maxDeclaringDepth = 1

// Resolver produces literal type names within one substitution context.
type Resolver struct {
	sub    *Substitution
	logger *zap.Logger
}

// NewResolver creates a resolver over sub. A nil logger disables logging.
func NewResolver(sub *Substitution, logger *zap.Logger) *Resolver {
	if sub == nil {
		sub = NewSubstitution()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{sub: sub, logger: logger}
}

// TypeName resolves t in a fresh context.
func TypeName(t *typedesc.Type) (string, error) {
	return Resolve(t, NewSubstitution())
}

// Resolve resolves t within sub.
func Resolve(t *typedesc.Type, sub *Substitution) (string, error) {
	return NewResolver(sub, nil).Resolve(t)
}

// Resolve returns the qualified literal name of t, e.g.
// "Tests.Name.MyTest3<System.String>.MyTest4<System.Int32>".
func (r *Resolver) Resolve(t *typedesc.Type) (string, error) {
	name, err := r.resolve(t, r.sub)
	if err != nil {
		return "", err
	}

	r.logger.Debug("resolved type name", zap.Stringer("type", t), zap.String("name", name))

	return name, nil
}

func (r *Resolver) resolve(t *typedesc.Type, sub *Substitution) (string, error) {
	switch t.Kind {
	case typedesc.KindParameter:
		bound, err := sub.Concrete(t)
		if err != nil {
			return "", err
		}

		return r.resolve(bound, sub)

	case typedesc.KindArray:
		elem, err := r.resolve(t.Elem, sub)
		if err != nil {
			return "", err
		}

		return elem + "[]", nil
	}

	scope := sub.Scope()

	def, args, err := bindArguments(t, scope)
	if err != nil {
		return "", err
	}

	declaring := def.Declaring
	if depth(def) > maxDeclaringDepth {
		return "", typedesc.UnsupportedNesting(t.String())
	}

	// Parameters of a generic enclosing type are the leading arguments of the
	// nested type; they belong to the enclosing name, not to this one.
	outerArity := 0
	if declaring != nil && declaring.Kind == typedesc.KindDefinition {
		outerArity = len(declaring.Params)
		if outerArity > len(args) {
			return "", typedesc.UnresolvedGenericParameter(t.String())
		}

		for i, p := range declaring.Params {
			scope.Bind(p, args[i])
		}
	}

	var sb strings.Builder

	if declaring != nil {
		enclosing, err := r.resolve(declaring, scope)
		if err != nil {
			return "", err
		}

		sb.WriteString(enclosing)
		sb.WriteString(".")
	} else if def.Namespace != "" {
		sb.WriteString(def.Namespace)
		sb.WriteString(".")
	}

	sb.WriteString(def.SimpleName())

	own := args[outerArity:]
	if len(own) > 0 {
		names := make([]string, len(own))
		for i, arg := range own {
			names[i], err = r.resolve(arg, scope)
			if err != nil {
				return "", err
			}
		}

		sb.WriteString("<")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(">")
	}

	return sb.String(), nil
}

// bindArguments returns the definition behind t and the arguments it is
// named with. Constructed types bind their arguments into scope; open
// definitions take theirs from scope.
func bindArguments(t *typedesc.Type, scope *Substitution) (*typedesc.Type, []*typedesc.Type, error) {
	switch t.Kind {
	case typedesc.KindConstructed:
		def := t.Definition
		for i, p := range def.Params {
			scope.Bind(p, t.Args[i])
		}

		return def, t.Args, nil

	case typedesc.KindDefinition:
		args := make([]*typedesc.Type, len(t.Params))
		for i, p := range t.Params {
			concrete, err := scope.Concrete(p)
			if err != nil {
				return nil, nil, err
			}

			args[i] = concrete
		}

		return t, args, nil

	default:
		return t, nil, nil
	}
}

func depth(t *typedesc.Type) int {
	n := 0
	for d := t.Declaring; d != nil; d = d.Declaring {
		n++
	}

	return n
}
