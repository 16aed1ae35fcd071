package literal

import (
	"go.uber.org/zap"

	"literal-generator/convert"
	"literal-generator/typedesc"
)

type options struct {
	converters []convert.Converter
	catalog    *typedesc.Catalog
	namespaces map[string]string
	logger     *zap.Logger
	maxDepth   int
}

// Option configures a single call.
type Option func(*options)

// WithConverters adds converters; they replace built-ins for the same type.
func WithConverters(converters ...convert.Converter) Option {
	return func(o *options) {
		o.converters = append(o.converters, converters...)
	}
}

// WithCatalog describes types through c instead of the default catalog.
func WithCatalog(c *typedesc.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithNamespace names the types of Go package pkgPath under namespace for
// this call only.
func WithNamespace(pkgPath, namespace string) Option {
	return func(o *options) {
		if o.namespaces == nil {
			o.namespaces = make(map[string]string)
		}
		o.namespaces[pkgPath] = namespace
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxDepth fails values nested deeper than n structural levels.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.catalog == nil {
		o.catalog = typedesc.Default()
	}

	// per-call namespaces must not leak into a shared catalog
	if len(o.namespaces) > 0 {
		o.catalog = o.catalog.Clone()
		for pkgPath, ns := range o.namespaces {
			o.catalog.MapNamespace(pkgPath, ns)
		}
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}
