// Package node walks a value graph and writes it as literal text.
package node

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"literal-generator/convert"
	"literal-generator/naming"
	"literal-generator/primitive"
	"literal-generator/typedesc"
)

const nullLiteral = "null"

// Config carries the collaborators of a Generator. Zero fields take defaults:
// the default catalog, the built-in converters and a no-op logger.
type Config struct {
	Catalog  *typedesc.Catalog
	Registry *convert.Registry
	Logger   *zap.Logger
	// MaxDepth bounds the nesting of structural values; zero is unbounded.
	MaxDepth int
}

// Generator serializes one value graph. It owns the substitution context and
// the visit path of a single top-level call and must not be reused
// concurrently.
type Generator struct {
	catalog  *typedesc.Catalog
	registry *convert.Registry
	logger   *zap.Logger
	maxDepth int

	sub   *naming.Substitution
	names map[*typedesc.Type]string
	path  Dealer
}

func NewGenerator(cfg Config) *Generator {
	g := &Generator{
		catalog:  cfg.Catalog,
		registry: cfg.Registry,
		logger:   cfg.Logger,
		maxDepth: cfg.MaxDepth,
		sub:      naming.NewSubstitution(),
		names:    make(map[*typedesc.Type]string),
	}

	if g.catalog == nil {
		g.catalog = typedesc.Default()
	}

	if g.registry == nil {
		g.registry = convert.Build()
	}

	if g.logger == nil {
		g.logger = zap.NewNop()
	}

	return g
}

// Dispatch picks the rendering for a present, non-pointer value of type rt.
// d is the descriptor of rt, or nil when rt has none.
func Dispatch(rt reflect.Type, d *typedesc.Type, registry *convert.Registry) DispatcherEnum {
	if d != nil && d.IsEnum() {
		return DispatcherEnumeration
	}

	if _, ok := registry.Find(rt); ok {
		return DispatcherConverter
	}

	if d != nil && primitive.FromReflectKind(rt).IsDirect() {
		return DispatcherPrimitive
	}

	switch rt.Kind() {
	default:
		return DispatcherUnknown
	case reflect.Slice, reflect.Array:
		return DispatcherSequence
	case reflect.Map:
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	}
}

// Generate returns the literal for v. Any error aborts the whole value.
func (g *Generator) Generate(v reflect.Value) (string, error) {
	return g.generate(v, 0)
}

func (g *Generator) generate(v reflect.Value, depth int) (string, error) {
	v = concrete(v)
	if isAbsent(v) {
		return nullLiteral, nil
	}

	rt := v.Type()

	if rt.Kind() == reflect.Pointer {
		if c, ok := g.registry.Find(rt); ok {
			return g.convert(c, nil, v)
		}

		leave, err := g.path.Enter(v)
		if err != nil {
			return "", err
		}
		defer leave()

		return g.generate(v.Elem(), depth)
	}

	d, describeErr := g.catalog.Describe(rt)
	if describeErr == nil {
		v, rt = asBuiltin(v, d, g.registry)
	}

	kind := Dispatch(rt, d, g.registry)
	g.logger.Debug("dispatch", zap.Stringer("type", rt), zap.Stringer("dispatcher", kind))

	switch kind {
	case DispatcherEnumeration:
		return g.genEnum(d, v)

	case DispatcherConverter:
		c, _ := g.registry.Find(rt)
		return g.convert(c, d, v)

	case DispatcherPrimitive:
		text, _ := primitive.Format(v)
		return text, nil
	}

	if describeErr != nil {
		return "", describeErr
	}

	if g.maxDepth > 0 && depth >= g.maxDepth {
		return "", errors.WithHint(
			errors.Wrapf(typedesc.ErrDepthExceeded, "%s at depth %d", rt, depth),
			"raise the maximum depth or register a converter for the type",
		)
	}

	switch kind {
	case DispatcherSequence:
		return g.genSequence(d, v, depth+1)
	case DispatcherMap:
		return g.genMap(d, v, depth+1)
	case DispatcherStruct:
		return g.genStruct(d, v, depth+1)
	default:
		return "", typedesc.UnsupportedType(rt.String())
	}
}

func (g *Generator) convert(c convert.Converter, d *typedesc.Type, v reflect.Value) (string, error) {
	text, err := c.Convert(d, v)
	if err != nil {
		return "", errors.Wrapf(err, "convert %s", v.Type())
	}

	return text, nil
}

// typeName resolves d once per call; each resolution starts a fresh scope of
// the call's substitution context.
func (g *Generator) typeName(d *typedesc.Type) (string, error) {
	if name, ok := g.names[d]; ok {
		return name, nil
	}

	name, err := naming.NewResolver(g.sub.Scope(), g.logger).Resolve(d)
	if err != nil {
		return "", err
	}

	g.names[d] = name

	return name, nil
}

// asBuiltin converts values of named basic types that are described as
// built-ins (type Label string) to the built-in type, unless a converter
// claims the named type itself.
func asBuiltin(v reflect.Value, d *typedesc.Type, registry *convert.Registry) (reflect.Value, reflect.Type) {
	rt := v.Type()
	if d.IsEnum() {
		return v, rt
	}

	if _, ok := registry.Find(rt); ok {
		return v, rt
	}

	builtin := primitive.FromReflectKind(rt).ReflectType()
	if builtin == nil || builtin == rt || typedesc.Builtin(primitive.FromReflectType(builtin)) != d {
		return v, rt
	}

	converted := v.Convert(builtin)

	return converted, builtin
}
