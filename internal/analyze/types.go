package analyze

import (
	"go/types"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "literal-generator/examples/fixtures"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // struct type
	TypeKindEnum               // named integer type
	TypeKindBasic              // named non-integer basic type, e.g. type Label string
	TypeKindInterface          // interface type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindEnum:
		return "enum"
	case TypeKindBasic:
		return "basic"
	case TypeKindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// TypeInfo describes an exported named type of a loaded package.
type TypeInfo struct {
	ID         TypeID
	Kind       TypeKind
	TypeParams []string    // parameter names of a generic type, in order
	Underlying *types.Basic // for enums and basic types
	GoType     *types.Named
}

// IsGeneric reports a generic type definition.
func (t *TypeInfo) IsGeneric() bool {
	return len(t.TypeParams) > 0
}

// Instance is an instantiation of a generic type of a loaded package with
// concrete type arguments, found where the package uses it.
type Instance struct {
	Origin TypeID
	Args   []types.Type
	GoType *types.Named
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Instances are ordered by package path, then by their Go spelling.
	Instances []Instance
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageTypes returns the types of a package in declaration-name order.
func (g *TypeGraph) PackageTypes(pkgPath string) []*TypeInfo {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	infos := make([]*TypeInfo, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		infos = append(infos, g.Types[id])
	}

	return infos
}

// PackageInstances returns the instances of generic types of a package.
func (g *TypeGraph) PackageInstances(pkgPath string) []Instance {
	var out []Instance
	for _, inst := range g.Instances {
		if inst.Origin.PkgPath == pkgPath {
			out = append(out, inst)
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package's Go files
	Types []TypeID // Exported named types defined in this package, sorted by name
}
