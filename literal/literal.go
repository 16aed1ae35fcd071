// Package literal writes Go values as object and collection initializer
// source text, so that data captured at runtime can be pasted into tests:
//
//	new Acme.Fixtures.Order
//	{
//	Id = new System.Guid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
//	Lines = new System.Collections.Generic.List<Acme.Fixtures.Line>
//	{
//	...
//	}
//	}
//
// Types are named through a typedesc.Catalog. Types the catalog cannot derive
// from reflection, such as generic instantiations and nested types, are
// registered explicitly or with descriptors generated by the describe command.
package literal

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"literal-generator/convert"
	"literal-generator/naming"
	"literal-generator/node"
	"literal-generator/typedesc"
)

var (
	ErrNoDefaultConstructor       = typedesc.ErrNoDefaultConstructor
	ErrUnresolvedGenericParameter = typedesc.ErrUnresolvedGenericParameter
	ErrUnsupportedNesting         = typedesc.ErrUnsupportedNesting
	ErrUnsupportedType            = typedesc.ErrUnsupportedType
	ErrCyclicGraph                = typedesc.ErrCyclicGraph
	ErrDepthExceeded              = typedesc.ErrDepthExceeded
)

// Generate writes value as literal text. Each call uses its own converter
// registry and substitution context; calls may run concurrently.
func Generate(value any, opts ...Option) (string, error) {
	o := buildOptions(opts)

	return generate(reflect.ValueOf(value), o)
}

func generate(v reflect.Value, o *options) (string, error) {
	g := node.NewGenerator(node.Config{
		Catalog:  o.catalog,
		Registry: convert.Build(o.converters...),
		Logger:   o.logger,
		MaxDepth: o.maxDepth,
	})

	out, err := g.Generate(v)
	if err != nil {
		o.logger.Debug("generate failed", zap.Error(err))
		return "", err
	}

	return out, nil
}

// GenerateFromJSON decodes raw into a new value of type hint and writes it.
func GenerateFromJSON(raw []byte, hint reflect.Type, opts ...Option) (string, error) {
	if hint == nil {
		return "", errors.New("generate from json: type hint is required")
	}

	target := reflect.New(hint)
	if err := json.Unmarshal(raw, target.Interface()); err != nil {
		return "", errors.Wrapf(err, "decode %s", hint)
	}

	o := buildOptions(opts)
	o.logger.Debug("decoded json", zap.Stringer("type", hint), zap.Int("bytes", len(raw)))

	return generate(target.Elem(), o)
}

// GenerateFromDecoded decodes raw into a T and writes it.
func GenerateFromDecoded[T any](raw []byte, opts ...Option) (string, error) {
	return GenerateFromJSON(raw, reflect.TypeFor[T](), opts...)
}

// GetTypeName returns the literal name of Go type rt.
func GetTypeName(rt reflect.Type, opts ...Option) (string, error) {
	o := buildOptions(opts)

	d, err := o.catalog.Describe(rt)
	if err != nil {
		return "", err
	}

	return naming.NewResolver(naming.NewSubstitution(), o.logger).Resolve(d)
}

// TypeName returns the literal name of a descriptor.
func TypeName(d *typedesc.Type) (string, error) {
	return naming.TypeName(d)
}
