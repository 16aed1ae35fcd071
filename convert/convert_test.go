package convert

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literal-generator/primitive"
	"literal-generator/typedesc"
)

type money int64

func moneyLiteral(m money) string {
	return fmt.Sprintf("new Acme.Money(%dm)", m)
}

func strictMoney(m money) (string, error) {
	if m < 0 {
		return "", errors.New("negative money")
	}

	return moneyLiteral(m), nil
}

func convertValue(t *testing.T, r *Registry, v any) string {
	t.Helper()

	rv := reflect.ValueOf(v)
	c, ok := r.Find(rv.Type())
	require.True(t, ok, "no converter for %s", rv.Type())

	out, err := c.Convert(nil, rv)
	require.NoError(t, err)

	return out
}

func TestDefaults(t *testing.T) {
	r := Build()
	yes := true

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "aaa", `"aaa"`},
		{"escaped string", "a\"b\\c\nd\te\x00\x01", `"a\"b\\c\nd\te\0\u0001"`},
		{"unicode string", "héllo ✓", `"héllo ✓"`},
		{"empty string", "", `""`},
		{"invalid utf-8", "a\xffb", `"a\u00FFb"`},
		{"truncated sequence", "\xe2\x9c", `"\u00E2\u009C"`},
		{"replacement character", "\uFFFD", "\"\uFFFD\""},
		{"char", primitive.Char('x'), `'x'`},
		{"quote char", primitive.Char('\''), `'\''`},
		{"double quote char", primitive.Char('"'), `'"'`},
		{"newline char", primitive.Char('\n'), `'\n'`},
		{"bool", false, "false"},
		{"nullable bool", &yes, "true"},
		{"nil nullable bool", (*bool)(nil), "null"},
		{
			"guid",
			uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			`new System.Guid("6ba7b810-9dad-11d1-80b4-00c04fd430c8")`,
		},
		{
			"utc time",
			time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			"new System.DateTime(630822816000000000L, System.DateTimeKind.Utc)",
		},
		{
			"unix epoch",
			time.Unix(0, 1500).UTC(),
			"new System.DateTime(621355968000000015L, System.DateTimeKind.Utc)",
		},
		{
			"fixed zone time",
			time.Date(2000, 1, 1, 3, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
			"new System.DateTime(630822924000000000L, System.DateTimeKind.Unspecified)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertValue(t, r, tt.value))
		})
	}
}

func TestQuoteChar_Invalid(t *testing.T) {
	_, err := QuoteChar(primitive.Char(0x1F600))
	assert.Error(t, err)

	_, err = QuoteChar(primitive.Char(0xD800))
	assert.Error(t, err)
}

func TestBuild_Overrides(t *testing.T) {
	upper := New(reflect.TypeFor[string](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
		return `"` + v.String() + `!"`, nil
	})

	r := Build(upper, For(moneyLiteral), nil)

	assert.Equal(t, len(Defaults())+1, r.Len())
	assert.Equal(t, `"aaa!"`, convertValue(t, r, "aaa"))
	assert.Equal(t, "new Acme.Money(12m)", convertValue(t, r, money(12)))

	// exact type only
	_, ok := r.Find(reflect.TypeFor[*money]())
	assert.False(t, ok)

	_, ok = r.Find(reflect.TypeFor[int64]())
	assert.False(t, ok)

	var nilRegistry *Registry
	_, ok = nilRegistry.Find(reflect.TypeFor[string]())
	assert.False(t, ok)
}

func TestBuild_Types(t *testing.T) {
	types := Build().Types()

	names := make([]string, len(types))
	for i, rt := range types {
		names[i] = rt.String()
	}

	assert.Equal(t, []string{"*bool", "bool", "primitive.Char", "string", "time.Time", "uuid.UUID"}, names)
}

func TestParseConverter(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		c, err := ParseConverter(moneyLiteral)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[money](), c.Type())
		assert.Equal(t, "convert.moneyLiteral", c.Name)

		out, err := c.Convert(nil, reflect.ValueOf(money(3)))
		require.NoError(t, err)
		assert.Equal(t, "new Acme.Money(3m)", out)
	})

	t.Run("with error", func(t *testing.T) {
		c, err := ParseConverter(strictMoney)
		require.NoError(t, err)

		_, err = c.Convert(nil, reflect.ValueOf(money(-1)))
		assert.EqualError(t, err, "negative money")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseConverter(42)
		assert.ErrorIs(t, err, ErrConverterIsNotAFunction)

		_, err = ParseConverter(nil)
		assert.ErrorIs(t, err, ErrConverterIsNotAFunction)

		for _, fn := range []any{
			func() string { return "" },
			func(int, int) string { return "" },
			func(int) int { return 0 },
			func(int) (string, bool) { return "", false },
			func(int) (string, error, bool) { return "", nil, false },
			func(...int) string { return "" },
		} {
			_, err = ParseConverter(fn)
			assert.ErrorIs(t, err, ErrIsNotAConverter, reflect.TypeOf(fn).String())
		}
	})
}

func ExampleQuote() {
	fmt.Println(Quote(`say "hi"`))
	fmt.Println(DateTimeLiteral(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)))
	// Output:
	// "say \"hi\""
	// new System.DateTime(638448048000000000L, System.DateTimeKind.Utc)
}
