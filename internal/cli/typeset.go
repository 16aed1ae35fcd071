package cli

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"literal-generator/examples/fixtures"
	"literal-generator/internal/match"
)

// TypeSet names the Go types a JSON document can be decoded into.
type TypeSet map[string]reflect.Type

// DefaultTypeSet holds dynamic JSON shapes and the fixture types.
func DefaultTypeSet() TypeSet {
	return TypeSet{
		"object": reflect.TypeFor[any](),
		"array":  reflect.TypeFor[[]any](),
		"map":    reflect.TypeFor[map[string]any](),

		"customer":     reflect.TypeFor[fixtures.Customer](),
		"order":        reflect.TypeFor[fixtures.Order](),
		"order-item":   reflect.TypeFor[fixtures.OrderItem](),
		"order-page":   reflect.TypeFor[fixtures.OrderPage](),
		"order-status": reflect.TypeFor[fixtures.OrderStatus](),
		"product":      reflect.TypeFor[fixtures.Product](),
	}
}

// Lookup returns the type registered under name.
func (s TypeSet) Lookup(name string) (reflect.Type, error) {
	rt, ok := s[strings.ToLower(name)]
	if !ok {
		err := errors.WithHintf(
			errors.Newf("unknown type %q", name),
			"known types: %s", strings.Join(s.Names(), ", "),
		)

		if closest, found := match.Closest(name, s.Names()); found {
			err = errors.WithHintf(err, "did you mean %q?", closest)
		}

		return nil, err
	}

	return rt, nil
}

// Names returns the registered names in order.
func (s TypeSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
