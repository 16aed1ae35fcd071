package typedesc

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/primitive"
)

type (
	level   int32
	flags   uint8
	label   string
	account struct{ ID string }
	box[T any] struct{ Value T }
	shape   interface{ Area() float64 }
)

func TestCatalog_Describe(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"string", reflect.TypeFor[string](), "System.String"},
		{"int", reflect.TypeFor[int](), "System.Int64"},
		{"int32", reflect.TypeFor[int32](), "System.Int32"},
		{"uint8", reflect.TypeFor[uint8](), "System.Byte"},
		{"float32", reflect.TypeFor[float32](), "System.Single"},
		{"char", reflect.TypeFor[primitive.Char](), "System.Char"},
		{"time", reflect.TypeFor[time.Time](), "System.DateTime"},
		{"uuid", reflect.TypeFor[uuid.UUID](), "System.Guid"},
		{"named string", reflect.TypeFor[label](), "System.String"},
		{"enum", reflect.TypeFor[level](), "typedesc.level"},
		{"nullable int", reflect.TypeFor[*int](), "System.Nullable`1[System.Int64]"},
		{"nullable enum", reflect.TypeFor[*flags](), "System.Nullable`1[typedesc.flags]"},
		{"pointer to string", reflect.TypeFor[*string](), "System.String"},
		{"pointer to struct", reflect.TypeFor[*account](), "typedesc.account"},
		{"slice", reflect.TypeFor[[]string](), "System.Collections.Generic.List`1[System.String]"},
		{"array", reflect.TypeFor[[2]bool](), "System.Boolean[]"},
		{
			"map",
			reflect.TypeFor[map[string][]int16](),
			"System.Collections.Generic.Dictionary`2[System.String,System.Collections.Generic.List`1[System.Int16]]",
		},
		{"empty interface", reflect.TypeFor[any](), "System.Object"},
		{"named interface", reflect.TypeFor[shape](), "typedesc.shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := c.Describe(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestCatalog_DescribeKinds(t *testing.T) {
	c := NewCatalog()

	d, err := c.Describe(reflect.TypeFor[level]())
	require.NoError(t, err)
	assert.True(t, d.IsEnum())
	assert.Same(t, Int32, d.Underlying)

	d, err = c.Describe(reflect.TypeFor[*float64]())
	require.NoError(t, err)
	assert.True(t, d.IsNullable())

	d, err = c.Describe(reflect.TypeFor[[]account]())
	require.NoError(t, err)
	assert.True(t, d.IsSequence())

	d, err = c.Describe(reflect.TypeFor[map[string]int]())
	require.NoError(t, err)
	assert.False(t, d.IsSequence())
}

func TestCatalog_DescribeUnsupported(t *testing.T) {
	c := NewCatalog()

	for _, rt := range []reflect.Type{
		reflect.TypeFor[func()](),
		reflect.TypeFor[chan int](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[struct{ A int }](),
		reflect.TypeFor[[]func()](),
	} {
		_, err := c.Describe(rt)
		assert.ErrorIs(t, err, ErrUnsupportedType, rt.String())
	}

	_, err := c.Describe(reflect.TypeFor[box[string]]())
	assert.ErrorIs(t, err, ErrUnresolvedGenericParameter)
}

func TestCatalog_Register(t *testing.T) {
	c := NewCatalog()
	boxDef := NewDefinition("Shop", "Box", "T")
	boxOfString := boxDef.Construct(String)

	require.NoError(t, c.Register(reflect.TypeFor[box[string]](), boxOfString))
	require.NoError(t, c.Register(reflect.TypeFor[box[string]](), boxOfString))

	err := c.Register(reflect.TypeFor[box[string]](), boxDef.Construct(Int32))
	assert.ErrorIs(t, err, ErrDuplicateRegistration)

	assert.Error(t, c.Register(reflect.TypeFor[box[int]](), boxDef))
	assert.Error(t, c.Register(nil, boxOfString))

	d, err := c.Describe(reflect.TypeFor[box[string]]())
	require.NoError(t, err)
	assert.Same(t, boxOfString, d)

	// registrations flow through derived containers
	d, err = c.Describe(reflect.TypeFor[[]box[string]]())
	require.NoError(t, err)
	assert.Same(t, boxOfString, d.Args[0])

	assert.Panics(t, func() { c.MustRegister(reflect.TypeFor[box[string]](), boxDef.Construct(Byte)) })
}

func TestCatalog_Namespace(t *testing.T) {
	c := NewCatalog()
	rt := reflect.TypeFor[account]()

	d, err := c.Describe(rt)
	require.NoError(t, err)
	assert.Equal(t, "typedesc", d.Namespace)

	c.MapNamespace(rt.PkgPath(), "Tests.New")

	d, err = c.Describe(rt)
	require.NoError(t, err)
	assert.Equal(t, "Tests.New", d.Namespace)

	clone := c.Clone()
	clone.MapNamespace(rt.PkgPath(), "Other")
	assert.Equal(t, "Tests.New", c.Namespace(rt.PkgPath()))
	assert.Equal(t, "Other", clone.Namespace(rt.PkgPath()))
}

func TestType_Nested(t *testing.T) {
	outer := NewDefinition("Tests.Name", "MyTest3", "T")
	inner := outer.Nested("MyTest4", "U")

	assert.Equal(t, KindDefinition, inner.Kind)
	assert.Equal(t, "MyTest4`1", inner.Name)
	assert.Equal(t, "MyTest4", inner.SimpleName())
	require.Len(t, inner.Params, 2)
	assert.Equal(t, "T", inner.Params[0].Name)
	assert.NotSame(t, outer.Params[0], inner.Params[0])
	assert.Same(t, outer, inner.DeclaringType())

	plainInner := outer.Nested("Node")
	assert.Equal(t, KindDefinition, plainInner.Kind)
	assert.Equal(t, "Node", plainInner.Name)
	assert.Len(t, plainInner.Params, 1)

	constructed := inner.Construct(String, Int32)
	assert.Same(t, inner, constructed.GenericDefinition())
	assert.Same(t, outer, constructed.DeclaringType())
	assert.Equal(t, "Tests.Name.MyTest3`1[T]+MyTest4`1[System.String,System.Int32]", constructed.String())

	assert.Panics(t, func() { inner.Construct(String) })
	assert.Panics(t, func() { String.Construct(Int32) })
	assert.Panics(t, func() { constructed.Nested("X") })
	assert.Panics(t, func() { NewDefinition("A", "B") })
}

func TestType_WithoutDefaultConstructor(t *testing.T) {
	d := NewPlain("Shop", "Order")
	flagged := d.WithoutDefaultConstructor()

	assert.False(t, d.NoDefaultConstructor)
	assert.True(t, flagged.NoDefaultConstructor)
	assert.Equal(t, d.String(), flagged.String())
}
