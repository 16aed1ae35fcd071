package typedesc

import (
	"maps"
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"literal-generator/internal/common"
	"literal-generator/primitive"
)

// Catalog maps Go types to descriptors. Registered descriptors win; other
// types are derived from their reflect.Type and cached.
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	registered map[reflect.Type]*Type
	derived    map[reflect.Type]*Type
	namespaces map[string]string // Go package path -> namespace
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		registered: make(map[reflect.Type]*Type),
		derived:    make(map[reflect.Type]*Type),
		namespaces: make(map[string]string),
	}
}

var defaultCatalog = NewCatalog()

// Default returns the process-wide catalog used when callers do not supply one.
func Default() *Catalog {
	return defaultCatalog
}

// Register binds rt to d. Registering the same descriptor twice is a no-op;
// registering a different one fails with ErrDuplicateRegistration.
func (c *Catalog) Register(rt reflect.Type, d *Type) error {
	if rt == nil || d == nil {
		return errors.New("register: type and descriptor must not be nil")
	}

	if d.Kind == KindDefinition || d.Kind == KindParameter {
		return errors.Newf("register %s: descriptor %s is open; construct it first", rt, d)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.registered[rt]; ok && prev != d {
		return errors.Wrapf(ErrDuplicateRegistration, "%s", rt)
	}

	c.registered[rt] = d
	delete(c.derived, rt)

	return nil
}

// MustRegister is like Register but panics on error.
// It is intended for generated registration code.
func (c *Catalog) MustRegister(rt reflect.Type, d *Type) {
	if err := c.Register(rt, d); err != nil {
		panic(err)
	}
}

// MapNamespace sets the namespace used for named types of a Go package.
func (c *Catalog) MapNamespace(pkgPath, namespace string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.namespaces[pkgPath] = namespace
	// derived names may depend on the namespace
	clear(c.derived)
}

// Namespace returns the namespace for a Go package path; unmapped packages
// use the last path element.
func (c *Catalog) Namespace(pkgPath string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.namespaceLocked(pkgPath)
}

func (c *Catalog) namespaceLocked(pkgPath string) string {
	if ns, ok := c.namespaces[pkgPath]; ok {
		return ns
	}

	return common.PkgAlias(pkgPath)
}

// Clone returns an independent copy holding the same registrations.
func (c *Catalog) Clone() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Catalog{
		registered: maps.Clone(c.registered),
		derived:    make(map[reflect.Type]*Type),
		namespaces: maps.Clone(c.namespaces),
	}
}

// Lookup returns the registered descriptor for rt, ignoring derivation.
func (c *Catalog) Lookup(rt reflect.Type) (*Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.registered[rt]

	return d, ok
}

// Describe returns the descriptor for rt.
func (c *Catalog) Describe(rt reflect.Type) (*Type, error) {
	if rt == nil {
		return Object, nil
	}

	c.mu.RLock()
	d, ok := c.registered[rt]
	if !ok {
		d, ok = c.derived[rt]
	}
	c.mu.RUnlock()

	if ok {
		return d, nil
	}

	d, err := c.derive(rt)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.derived[rt] = d
	c.mu.Unlock()

	return d, nil
}

func (c *Catalog) derive(rt reflect.Type) (*Type, error) {
	if d := Builtin(primitive.FromReflectType(rt)); d != nil {
		return d, nil
	}

	switch rt.Kind() {
	case reflect.Pointer:
		elem, err := c.Describe(rt.Elem())
		if err != nil {
			return nil, err
		}

		if IsNullableElem(rt.Elem(), elem) {
			return NullableOf(elem), nil
		}

		return elem, nil

	case reflect.Slice:
		elem, err := c.Describe(rt.Elem())
		if err != nil {
			return nil, err
		}

		return ListOf(elem), nil

	case reflect.Array:
		elem, err := c.Describe(rt.Elem())
		if err != nil {
			return nil, err
		}

		return ArrayOf(elem), nil

	case reflect.Map:
		key, err := c.Describe(rt.Key())
		if err != nil {
			return nil, err
		}

		value, err := c.Describe(rt.Elem())
		if err != nil {
			return nil, err
		}

		return DictionaryOf(key, value), nil

	case reflect.Interface:
		if rt.Name() == "" {
			return Object, nil
		}

		return NewPlain(c.Namespace(rt.PkgPath()), rt.Name()), nil

	case reflect.Struct:
		if rt.Name() == "" {
			return nil, UnsupportedType(rt.String())
		}

		if strings.Contains(rt.Name(), "[") {
			return nil, UnresolvedGenericParameter(rt.String())
		}

		return NewPlain(c.Namespace(rt.PkgPath()), rt.Name()), nil

	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return nil, UnsupportedType(rt.String())
	}

	kind := primitive.FromReflectKind(rt)
	if kind == 0 {
		return nil, UnsupportedType(rt.String())
	}

	if kind.IsInteger() && rt.Name() != "" && rt.PkgPath() != "" {
		if strings.Contains(rt.Name(), "[") {
			return nil, UnresolvedGenericParameter(rt.String())
		}

		return NewEnum(c.Namespace(rt.PkgPath()), rt.Name(), Builtin(kind)), nil
	}

	return Builtin(kind), nil
}

// IsNullableElem reports whether a pointer to elem is a nullable value type
// rather than a reference to it.
func IsNullableElem(elem reflect.Type, d *Type) bool {
	if d.IsEnum() {
		return true
	}

	return primitive.FromReflectKind(elem).IsValueType()
}
