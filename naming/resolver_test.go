package naming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/typedesc"
)

var (
	classNameTests = typedesc.NewPlain("Tests.Name", "ClassNameTests")
	myTest1        = typedesc.NewPlain("Tests.Name", "MyTest1")
	myTest2        = classNameTests.Nested("MyTest2")
	myTest3        = typedesc.NewDefinition("Tests.Name", "MyTest3", "T")
	myTest4        = myTest3.Nested("MyTest4", "U")
	myTest5        = myTest3.Nested("MyTest5")
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		typ  *typedesc.Type
		want string
	}{
		{"plain", myTest1, "Tests.Name.MyTest1"},
		{"nested class", myTest2, "Tests.Name.ClassNameTests.MyTest2"},
		{"simple generic", myTest3.Construct(typedesc.String), "Tests.Name.MyTest3<System.String>"},
		{
			"nested generic",
			myTest4.Construct(typedesc.String, typedesc.Int32),
			"Tests.Name.MyTest3<System.String>.MyTest4<System.Int32>",
		},
		{
			"plain nested in generic",
			myTest5.Construct(typedesc.String),
			"Tests.Name.MyTest3<System.String>.MyTest5",
		},
		{"list", typedesc.ListOf(typedesc.String), "System.Collections.Generic.List<System.String>"},
		{"array", typedesc.ArrayOf(typedesc.String), "System.String[]"},
		{"array of list", typedesc.ArrayOf(typedesc.ListOf(typedesc.Int64)), "System.Collections.Generic.List<System.Int64>[]"},
		{"nullable", typedesc.NullableOf(typedesc.Double), "System.Nullable<System.Double>"},
		{
			"dictionary",
			typedesc.DictionaryOf(typedesc.String, typedesc.ListOf(typedesc.Guid)),
			"System.Collections.Generic.Dictionary<System.String, System.Collections.Generic.List<System.Guid>>",
		},
		{
			"generic argument of generic",
			myTest3.Construct(myTest3.Construct(typedesc.Char)),
			"Tests.Name.MyTest3<Tests.Name.MyTest3<System.Char>>",
		},
		{"enum", typedesc.NewEnum("Tests.New", "MyEnum", typedesc.Int32), "Tests.New.MyEnum"},
		{"no namespace", typedesc.NewPlain("", "Global"), "Global"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeName(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeName_Idempotent(t *testing.T) {
	typ := myTest4.Construct(typedesc.ListOf(typedesc.String), typedesc.Int32)

	first, err := TypeName(typ)
	require.NoError(t, err)

	second, err := TypeName(typ)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_SharedContext(t *testing.T) {
	// two instantiations of the same definition within one context must not
	// see each other's bindings
	sub := NewSubstitution()
	r := NewResolver(sub, nil)

	a, err := r.Resolve(myTest4.Construct(typedesc.String, typedesc.Int32))
	require.NoError(t, err)
	assert.Equal(t, "Tests.Name.MyTest3<System.String>.MyTest4<System.Int32>", a)

	b, err := r.Resolve(myTest4.Construct(typedesc.Boolean, typedesc.Byte))
	require.NoError(t, err)
	assert.Equal(t, "Tests.Name.MyTest3<System.Boolean>.MyTest4<System.Byte>", b)
}

func TestResolve_BoundParameter(t *testing.T) {
	sub := NewSubstitution()
	require.True(t, sub.Bind(myTest3.Params[0], typedesc.String))
	assert.False(t, sub.Bind(myTest3.Params[0], typedesc.Int32))

	name, err := Resolve(myTest3.Params[0], sub)
	require.NoError(t, err)
	assert.Equal(t, "System.String", name)

	// an open definition takes its arguments from the context
	name, err = Resolve(myTest3, sub)
	require.NoError(t, err)
	assert.Equal(t, "Tests.Name.MyTest3<System.String>", name)
}

func TestResolve_Errors(t *testing.T) {
	t.Run("unbound parameter", func(t *testing.T) {
		_, err := TypeName(myTest3.Params[0])
		require.Error(t, err)
		assert.ErrorIs(t, err, typedesc.ErrUnresolvedGenericParameter)
		assert.Contains(t, err.Error(), "T of Tests.Name.MyTest3`1[T]")
	})

	t.Run("open definition", func(t *testing.T) {
		_, err := TypeName(typedesc.List)
		assert.ErrorIs(t, err, typedesc.ErrUnresolvedGenericParameter)
	})

	t.Run("parameter loop", func(t *testing.T) {
		sub := NewSubstitution()
		p, q := myTest3.Params[0], myTest4.Params[1]
		sub.Bind(p, q)
		sub.Bind(q, p)

		_, err := Resolve(p, sub)
		assert.ErrorIs(t, err, typedesc.ErrUnresolvedGenericParameter)
	})

	t.Run("three levels", func(t *testing.T) {
		deep := myTest2.Nested("MyTest5")

		_, err := TypeName(deep)
		require.Error(t, err)
		assert.ErrorIs(t, err, typedesc.ErrUnsupportedNesting)
		assert.Contains(t, err.Error(), "MyTest5")
	})
}

func TestSubstitution_Scope(t *testing.T) {
	root := NewSubstitution()
	root.Bind(myTest3.Params[0], typedesc.String)

	child := root.Scope()
	assert.True(t, child.Bind(myTest3.Params[0], typedesc.Int32))

	got, ok := child.Lookup(myTest3.Params[0])
	require.True(t, ok)
	assert.Same(t, typedesc.Int32, got)

	got, ok = root.Lookup(myTest3.Params[0])
	require.True(t, ok)
	assert.Same(t, typedesc.String, got)

	child.Bind(myTest4.Params[1], typedesc.Byte)
	assert.Equal(t, 2, child.Len())
	assert.Equal(t, 1, root.Len())
}

func ExampleTypeName() {
	outer := typedesc.NewDefinition("Shop", "Catalog", "TItem")
	page := outer.Nested("Page", "TCursor")

	name, _ := TypeName(page.Construct(typedesc.String, typedesc.Int64))
	fmt.Println(name)
	// Output:
	// Shop.Catalog<System.String>.Page<System.Int64>
}
