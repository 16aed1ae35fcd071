package analyze

import (
	"go/types"
)

// TypeStringer spells go/types types as Go source seen from one package,
// recording the imports the spelling needs.
type TypeStringer struct {
	pkgPath string
	imports map[string]string // path -> package name
}

// NewTypeStringer creates a stringer for code placed in package pkgPath.
func NewTypeStringer(pkgPath string) *TypeStringer {
	return &TypeStringer{
		pkgPath: pkgPath,
		imports: make(map[string]string),
	}
}

// TypeString returns t as Go source, e.g. "Page[Order]" or "[]uuid.UUID".
func (s *TypeStringer) TypeString(t types.Type) string {
	return types.TypeString(t, s.qualify)
}

func (s *TypeStringer) qualify(p *types.Package) string {
	if p.Path() == s.pkgPath {
		return ""
	}

	s.imports[p.Path()] = p.Name()

	return p.Name()
}

// Imports returns the packages referenced so far, keyed by path.
func (s *TypeStringer) Imports() map[string]string {
	return s.imports
}
