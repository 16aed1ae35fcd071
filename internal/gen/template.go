package gen

import (
	"go/format"
	"text/template"
)

// templateData holds all data needed for the registration template.
type templateData struct {
	PackageName   string
	Namespace     string
	StdImports    []importSpec
	Imports       []importSpec
	Definitions   []varSpec
	Constructed   []varSpec
	Registrations []registration
}

// importSpec represents an import statement.
type importSpec struct {
	Path string
}

// varSpec is a package-level descriptor variable.
type varSpec struct {
	Var  string
	Expr string
}

// registration binds a Go type to the variable holding its descriptor.
type registration struct {
	GoType string
	Var    string
}

var registrationTemplate = template.Must(template.New("registration").Parse(`// Code generated by literal-generator describe. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .StdImports}}
	"{{.Path}}"
{{- end}}
{{- if .Imports}}
{{range .Imports}}
	"{{.Path}}"
{{- end}}
{{- end}}
)

const literalNamespace = "{{.Namespace}}"

var (
{{- range .Definitions}}
	{{.Var}} = {{.Expr}}
{{- end}}
)
{{- if .Constructed}}

var (
{{- range .Constructed}}
	{{.Var}} = {{.Expr}}
{{- end}}
)
{{- end}}

// RegisterLiteralTypes registers the descriptors of this package's types in c.
func RegisterLiteralTypes(c *typedesc.Catalog) error {
	entries := []struct {
		rt reflect.Type
		d  *typedesc.Type
	}{
{{- range .Registrations}}
		{reflect.TypeFor[{{.GoType}}](), {{.Var}}},
{{- end}}
	}

	for _, e := range entries {
		if err := c.Register(e.rt, e.d); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	if err := RegisterLiteralTypes(typedesc.Default()); err != nil {
		panic(err)
	}
}
`))

func formatSource(src []byte) ([]byte, error) {
	return format.Source(src)
}
