package gen

import (
	"bytes"
	"cmp"
	"go/types"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"literal-generator/internal/analyze"
	"literal-generator/internal/diagnostic"
)

// DefaultFilename is the name of the generated registration file.
const DefaultFilename = "literal_types.go"

const (
	modulePath = "literal-generator"
	// typedescImport is the import path of the descriptor package used by
	// generated code.
	typedescImport = modulePath + "/typedesc"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package clause of the generated file; empty uses
	// the described package's name.
	PackageName string
	// Namespace is the literal namespace of the described types; empty uses
	// the package name.
	Namespace string
	// Filename is the name of the generated file.
	Filename string
	// OutputDir receives an unformatted copy of the file when formatting fails.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename: DefaultFilename,
	}
}

// Generator writes a Go file that registers descriptors for the named types
// of one package and the instantiations of its generic types.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger

	stringer *analyze.TypeStringer
	vars     map[analyze.TypeID]string // non-generic types and definitions
	instVars map[string]string         // instance spelling -> var
	data     *templateData
	diags    diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, logger *zap.Logger) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "literal_types.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Diagnostics lists the types and instances left without a descriptor.
	Diagnostics diagnostic.Diagnostics
}

// Generate renders the registration file for package pkgPath of graph.
func (g *Generator) Generate(graph *analyze.TypeGraph, pkgPath string) (*GeneratedFile, error) {
	pkg, ok := graph.Packages[pkgPath]
	if !ok {
		return nil, errors.Newf("package %s is not loaded", pkgPath)
	}

	g.stringer = analyze.NewTypeStringer(pkgPath)
	g.vars = make(map[analyze.TypeID]string)
	g.instVars = make(map[string]string)
	g.diags = diagnostic.Diagnostics{}
	g.data = &templateData{
		PackageName: cmp.Or(g.config.PackageName, pkg.Name),
		Namespace:   cmp.Or(g.config.Namespace, pkg.Name),
	}

	for _, info := range graph.PackageTypes(pkgPath) {
		g.addType(info)
	}

	for _, inst := range graph.PackageInstances(pkgPath) {
		if _, err := g.instanceVar(inst.GoType); err != nil {
			spelling := types.TypeString(inst.GoType, types.RelativeTo(inst.GoType.Obj().Pkg()))
			g.diags.AddWarning(diagnostic.CodeSkippedInstance, spelling, err.Error())
			g.logger.Debug("skipping generic instance", zap.String("type", spelling), zap.Error(err))
		}
	}

	g.data.StdImports, g.data.Imports = g.buildImports()

	var buf bytes.Buffer
	if err := registrationTemplate.Execute(&buf, g.data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	formatted, err := formatSource(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return nil, errors.Wrap(err, "formatting generated code")
	}

	g.logger.Debug("generated registrations",
		zap.String("package", pkgPath),
		zap.Int("types", len(g.data.Registrations)),
	)

	return &GeneratedFile{
		Filename:    g.config.Filename,
		Content:     formatted,
		Diagnostics: g.diags,
	}, nil
}

func (g *Generator) addType(info *analyze.TypeInfo) {
	name := info.ID.Name
	varName := "literal" + name

	var expr string
	switch info.Kind {
	case analyze.TypeKindStruct:
		if info.IsGeneric() {
			expr = "typedesc.NewDefinition(literalNamespace, " + strconv.Quote(name) + ", " + quoteAll(info.TypeParams) + ")"
		} else {
			expr = "typedesc.NewPlain(literalNamespace, " + strconv.Quote(name) + ")"
		}

	case analyze.TypeKindEnum:
		underlying, ok := basicDescriptor(info.Underlying)
		if !ok || info.IsGeneric() {
			g.diags.AddInfo(diagnostic.CodeUndescribedType, name, "integer type has no enumeration descriptor")
			return
		}
		expr = "typedesc.NewEnum(literalNamespace, " + strconv.Quote(name) + ", " + underlying + ")"

	case analyze.TypeKindBasic:
		g.diags.AddInfo(diagnostic.CodeBuiltinType, name, "described as its underlying built-in type")
		return

	default:
		// interfaces never appear as runtime types
		g.diags.AddInfo(diagnostic.CodeUndescribedType, name, "only structs and integer types are described")
		return
	}

	g.vars[info.ID] = varName
	g.data.Definitions = append(g.data.Definitions, varSpec{Var: varName, Expr: expr})

	if !info.IsGeneric() {
		g.data.Registrations = append(g.data.Registrations, registration{
			GoType: g.stringer.TypeString(info.GoType),
			Var:    varName,
		})
	}
}

// buildImports splits the imports of the generated file into the standard
// library group and the rest.
func (g *Generator) buildImports() (std, other []importSpec) {
	extra := g.stringer.Imports()
	extra["reflect"] = "reflect"
	extra[typedescImport] = "typedesc"

	for _, path := range slices.Sorted(maps.Keys(extra)) {
		first, _, _ := strings.Cut(path, "/")
		if strings.Contains(first, ".") || first == modulePath {
			other = append(other, importSpec{Path: path})
		} else {
			std = append(std, importSpec{Path: path})
		}
	}

	return std, other
}

func quoteAll(names []string) string {
	var buf bytes.Buffer
	for i, n := range names {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Quote(n))
	}

	return buf.String()
}
