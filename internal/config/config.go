// Package config loads the YAML configuration of the literal-generator CLI.
//
// Example:
//
//	version: "1"
//	namespaces:
//	  literal-generator/examples/fixtures: Acme.Fixtures
//	max_depth: 64
//	describe:
//	  package_name: fixtures
//	  namespace: Acme.Fixtures
//	  output: ./examples/fixtures
package config

import (
	"literal-generator/typedesc"
)

const (
	CurrentVersion  = "1"
	DefaultMaxDepth = 64
)

// File is the root of a configuration file.
type File struct {
	Version string `yaml:"version" validate:"eq=1"`
	// Namespaces maps Go package paths to literal namespaces.
	Namespaces map[string]string `yaml:"namespaces,omitempty" validate:"dive,keys,required,endkeys,namespace"`
	MaxDepth   int               `yaml:"max_depth,omitempty" validate:"gte=0"`
	Describe   Describe          `yaml:"describe,omitempty"`
}

// Describe configures descriptor code generation.
type Describe struct {
	PackageName string `yaml:"package_name,omitempty" validate:"omitempty,goident"`
	Namespace   string `yaml:"namespace,omitempty" validate:"omitempty,namespace"`
	// Output is the directory of the generated file; empty writes next to
	// the package sources and "-" writes to stdout.
	Output string `yaml:"output,omitempty"`
}

// Catalog returns a copy of base with the configured namespaces mapped.
func (f *File) Catalog(base *typedesc.Catalog) *typedesc.Catalog {
	c := base.Clone()
	for pkgPath, ns := range f.Namespaces {
		c.MapNamespace(pkgPath, ns)
	}

	return c
}
