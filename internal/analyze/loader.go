package analyze

import (
	"go/types"
	"maps"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	instances map[string]Instance // keyed by the instance's Go spelling
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		instances: make(map[string]Instance),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/fixtures").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	return a.LoadPackagesIn("", patterns...)
}

// LoadPackagesIn is LoadPackages with patterns resolved relative to dir.
func (a *Analyzer) LoadPackagesIn(dir string, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "package errors")
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	for _, pkg := range pkgs {
		a.collectInstances(pkg)
	}

	a.graph.Instances = a.graph.Instances[:0]
	for _, key := range slices.Sorted(maps.Keys(a.instances)) {
		a.graph.Instances = append(a.graph.Instances, a.instances[key])
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		info := analyzeNamedType(named)
		info.ID = TypeID{PkgPath: pkg.PkgPath, Name: name}

		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

func analyzeNamedType(named *types.Named) *TypeInfo {
	info := &TypeInfo{GoType: named}

	for i := 0; i < named.TypeParams().Len(); i++ {
		info.TypeParams = append(info.TypeParams, named.TypeParams().At(i).Obj().Name())
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct

	case *types.Basic:
		info.Underlying = ut
		if ut.Info()&types.IsInteger != 0 {
			info.Kind = TypeKindEnum
		} else {
			info.Kind = TypeKindBasic
		}

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		info.Kind = TypeKindUnknown
	}

	return info
}

// collectInstances records instantiations of loaded generic types whose type
// arguments are all concrete.
func (a *Analyzer) collectInstances(pkg *packages.Package) {
	if pkg.TypesInfo == nil {
		return
	}

	for _, inst := range pkg.TypesInfo.Instances {
		named, ok := inst.Type.(*types.Named)
		if !ok {
			continue
		}

		origin := named.Origin().Obj()
		if origin.Pkg() == nil {
			continue
		}

		id := TypeID{PkgPath: origin.Pkg().Path(), Name: origin.Name()}
		if _, loaded := a.graph.Types[id]; !loaded {
			continue
		}

		args := make([]types.Type, named.TypeArgs().Len())
		concrete := true
		for i := range args {
			args[i] = named.TypeArgs().At(i)
			if hasTypeParam(args[i]) {
				concrete = false
			}
		}

		if !concrete {
			continue
		}

		key := types.TypeString(named, nil)
		if _, seen := a.instances[key]; !seen {
			a.instances[key] = Instance{Origin: id, Args: args, GoType: named}
		}
	}
}

func hasTypeParam(t types.Type) bool {
	switch tt := t.(type) {
	case *types.TypeParam:
		return true
	case *types.Pointer:
		return hasTypeParam(tt.Elem())
	case *types.Slice:
		return hasTypeParam(tt.Elem())
	case *types.Array:
		return hasTypeParam(tt.Elem())
	case *types.Map:
		return hasTypeParam(tt.Key()) || hasTypeParam(tt.Elem())
	case *types.Named:
		for i := 0; i < tt.TypeArgs().Len(); i++ {
			if hasTypeParam(tt.TypeArgs().At(i)) {
				return true
			}
		}
	}

	return false
}
