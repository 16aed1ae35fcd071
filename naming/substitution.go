package naming

import (
	"literal-generator/typedesc"
)

// Substitution maps generic parameters to the types bound to them.
// Bindings are never removed. A child scope reads through to its parent and
// writes locally, so resolving one name never disturbs the bindings another
// name was resolved with.
type Substitution struct {
	parent *Substitution
	bound  map[*typedesc.Type]*typedesc.Type
}

// NewSubstitution creates an empty root context.
func NewSubstitution() *Substitution {
	return &Substitution{bound: make(map[*typedesc.Type]*typedesc.Type)}
}

// Scope opens a child context.
func (s *Substitution) Scope() *Substitution {
	return &Substitution{parent: s, bound: make(map[*typedesc.Type]*typedesc.Type)}
}

// Bind records param -> t unless param is already bound in this scope;
// the first writer wins. It reports whether the binding was stored.
func (s *Substitution) Bind(param, t *typedesc.Type) bool {
	if _, ok := s.bound[param]; ok {
		return false
	}

	s.bound[param] = t

	return true
}

// Lookup returns the direct binding of param, searching enclosing scopes.
func (s *Substitution) Lookup(param *typedesc.Type) (*typedesc.Type, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if t, ok := scope.bound[param]; ok {
			return t, true
		}
	}

	return nil, false
}

// Concrete follows param through the bindings until a type that is not a
// parameter is reached. A missing link or a loop is unresolved.
func (s *Substitution) Concrete(param *typedesc.Type) (*typedesc.Type, error) {
	visited := make(map[*typedesc.Type]struct{})

	t := param
	for t.IsParameter() {
		if _, loop := visited[t]; loop {
			return nil, typedesc.UnresolvedGenericParameter(describeParam(param))
		}
		visited[t] = struct{}{}

		next, ok := s.Lookup(t)
		if !ok {
			return nil, typedesc.UnresolvedGenericParameter(describeParam(param))
		}

		t = next
	}

	return t, nil
}

// Len counts the bindings visible from this scope, shadowed ones once.
func (s *Substitution) Len() int {
	seen := make(map[*typedesc.Type]struct{})
	for scope := s; scope != nil; scope = scope.parent {
		for p := range scope.bound {
			seen[p] = struct{}{}
		}
	}

	return len(seen)
}

func describeParam(param *typedesc.Type) string {
	if param.Owner == nil {
		return param.Name
	}

	return param.Name + " of " + param.Owner.String()
}
