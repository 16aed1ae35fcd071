package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"literal-generator/internal/analyze"
	"literal-generator/internal/diagnostic"
)

const (
	fixturesPkg = "literal-generator/examples/fixtures"
	mixedPkg    = "literal-generator/internal/gen/testdata/mixed"
)

func load(t *testing.T, pattern string) *analyze.TypeGraph {
	t.Helper()

	graph, err := analyze.NewAnalyzer().LoadPackages(pattern)
	require.NoError(t, err)

	return graph
}

func TestGenerator_Fixtures(t *testing.T) {
	graph := load(t, fixturesPkg)

	g := NewGenerator(GeneratorConfig{Namespace: "Shop.Store"}, zaptest.NewLogger(t))
	file, err := g.Generate(graph, fixturesPkg)
	require.NoError(t, err)

	assert.Equal(t, DefaultFilename, file.Filename)

	src := string(file.Content)
	assert.True(t, strings.HasPrefix(src, "// Code generated by literal-generator describe. DO NOT EDIT.\n\npackage fixtures\n"))
	assert.Contains(t, src, "import (\n\t\"reflect\"\n\n\t\"literal-generator/typedesc\"\n)")
	assert.Contains(t, src, `const literalNamespace = "Shop.Store"`)
	assert.Contains(t, src, `literalOrderStatus = typedesc.NewEnum(literalNamespace, "OrderStatus", typedesc.Int32)`)
	assert.Contains(t, src, `literalPage        = typedesc.NewDefinition(literalNamespace, "Page", "T")`)
	assert.Contains(t, src, "literalPageInstance1 = literalPage.Construct(literalOrder)")
	assert.Contains(t, src, "{reflect.TypeFor[Page[Order]](), literalPageInstance1},")
	assert.Contains(t, src, "{reflect.TypeFor[Customer](), literalCustomer},")
	assert.NotContains(t, src, "reflect.TypeFor[Page]()")
	assert.NotContains(t, src, "OrderPage")
	assert.False(t, file.Diagnostics.HasWarnings())
}

func TestGenerator_FixturesMatchCommittedFile(t *testing.T) {
	graph := load(t, fixturesPkg)

	file, err := NewGenerator(GeneratorConfig{Namespace: "Shop.Store"}, nil).Generate(graph, fixturesPkg)
	require.NoError(t, err)

	committed, err := os.ReadFile(filepath.Join("..", "..", "examples", "fixtures", DefaultFilename))
	require.NoError(t, err)

	assert.Equal(t, string(committed), string(file.Content),
		"examples/fixtures is stale, run go generate ./examples/fixtures")
}

func TestGenerator_CrossPackageArguments(t *testing.T) {
	graph := load(t, mixedPkg)

	g := NewGenerator(GeneratorConfig{PackageName: "described"}, zaptest.NewLogger(t))
	file, err := g.Generate(graph, mixedPkg)
	require.NoError(t, err)

	src := string(file.Content)
	assert.Contains(t, src, "package described\n")
	assert.Contains(t, src, `const literalNamespace = "mixed"`)
	assert.Contains(t, src, "import (\n\t\"reflect\"\n\t\"time\"\n\n\t\"github.com/google/uuid\"\n\t\"literal-generator/typedesc\"\n)")

	assert.Contains(t, src, `typedesc.NewEnum(literalNamespace, "Level", typedesc.Byte)`)
	assert.Contains(t, src, `typedesc.NewDefinition(literalNamespace, "Pair", "K", "V")`)
	assert.Contains(t, src,
		"literalPairInstance1 = literalPair.Construct(typedesc.Int64, typedesc.ListOf(typedesc.NullableOf(typedesc.DateTime)))")
	assert.Contains(t, src, "literalPairInstance2 = literalPair.Construct(typedesc.String, typedesc.Guid)")
	assert.Contains(t, src, "{reflect.TypeFor[Pair[int, []*time.Time]](), literalPairInstance1},")
	assert.Contains(t, src, "{reflect.TypeFor[Pair[string, uuid.UUID]](), literalPairInstance2},")

	// strings and interfaces keep their built-in or no descriptor
	assert.NotContains(t, src, `"Label"`)
	assert.NotContains(t, src, `"Handler"`)
	assert.NotContains(t, src, "Pair[Handler")

	require.Len(t, file.Diagnostics.Warnings, 1)
	warning := file.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeSkippedInstance, warning.Code)
	assert.Equal(t, "Pair[Handler, int]", warning.Type)

	var infos []string
	for _, d := range file.Diagnostics.Infos {
		infos = append(infos, d.Type+" "+d.Code)
	}
	assert.ElementsMatch(t, []string{"Handler undescribed-type", "Label builtin-type"}, infos)
}

func TestGenerator_UnknownPackage(t *testing.T) {
	_, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(analyze.NewTypeGraph(), "example/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example/missing")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	err := WriteFiles([]GeneratedFile{{Filename: "a.go", Content: []byte("package a\n")}}, dir)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(got))
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, DefaultFilename, []byte("package broken {")))

	got, err := os.ReadFile(filepath.Join(dir, "literal_types.unformatted.txt"))
	require.NoError(t, err)
	assert.Equal(t, "package broken {", string(got))

	assert.NoError(t, writeDebugUnformatted("", DefaultFilename, nil))
}
