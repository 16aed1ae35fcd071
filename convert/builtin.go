package convert

import (
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"literal-generator/primitive"
	"literal-generator/typedesc"
)

// DateTime ticks are 100ns intervals since 0001-01-01T00:00:00.
const (
	secondsToUnixEpoch = 62135596800
	ticksPerSecond     = 10_000_000
	nanosPerTick       = 100
)

// Defaults returns the built-in converters: strings, GUIDs, characters,
// timestamps, booleans and nullable booleans.
func Defaults() []Converter {
	return []Converter{
		New(reflect.TypeFor[string](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
			return Quote(v.String()), nil
		}),
		New(reflect.TypeFor[uuid.UUID](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
			return GuidLiteral(v.Interface().(uuid.UUID)), nil
		}),
		New(reflect.TypeFor[primitive.Char](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
			return QuoteChar(primitive.Char(v.Int()))
		}),
		New(reflect.TypeFor[time.Time](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
			return DateTimeLiteral(v.Interface().(time.Time)), nil
		}),
		New(reflect.TypeFor[bool](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
			return strconv.FormatBool(v.Bool()), nil
		}),
		New(reflect.TypeFor[*bool](), func(_ *typedesc.Type, v reflect.Value) (string, error) {
			if v.IsNil() {
				return "null", nil
			}

			return strconv.FormatBool(v.Elem().Bool()), nil
		}),
	}
}

// Quote writes s as a regular string literal. Bytes that are not valid
// UTF-8 are written as fixed-width \u00XX escapes of their value.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)

	sb.WriteByte('"')
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case r == utf8.RuneError && size == 1:
			writeCodeUnit(&sb, rune(s[0]))
		case r == '"':
			sb.WriteString(`\"`)
		default:
			writeEscaped(&sb, r)
		}

		s = s[size:]
	}
	sb.WriteByte('"')

	return sb.String()
}

// QuoteChar writes c as a character literal.
func QuoteChar(c primitive.Char) (string, error) {
	if !c.IsValid() {
		return "", errors.Newf("character U+%04X is not a single UTF-16 code unit", rune(c))
	}

	var sb strings.Builder

	sb.WriteByte('\'')
	if c == '\'' {
		sb.WriteString(`\'`)
	} else {
		writeEscaped(&sb, rune(c))
	}
	sb.WriteByte('\'')

	return sb.String(), nil
}

func writeEscaped(sb *strings.Builder, r rune) {
	switch r {
	case '\\':
		sb.WriteString(`\\`)
	case 0:
		sb.WriteString(`\0`)
	case '\a':
		sb.WriteString(`\a`)
	case '\b':
		sb.WriteString(`\b`)
	case '\f':
		sb.WriteString(`\f`)
	case '\n':
		sb.WriteString(`\n`)
	case '\r':
		sb.WriteString(`\r`)
	case '\t':
		sb.WriteString(`\t`)
	case '\v':
		sb.WriteString(`\v`)
	default:
		if r < 0x20 || r == 0x7F || r == '\u2028' || r == '\u2029' {
			writeCodeUnit(sb, r)
			return
		}

		sb.WriteRune(r)
	}
}

// writeCodeUnit writes r as a \uXXXX escape. The fixed width keeps a
// following hex digit out of the escape, which \x would not.
func writeCodeUnit(sb *strings.Builder, r rune) {
	hex := strconv.FormatInt(int64(r), 16)

	sb.WriteString(`\u`)
	sb.WriteString(strings.Repeat("0", 4-len(hex)))
	sb.WriteString(strings.ToUpper(hex))
}

// GuidLiteral writes id as a constructor call over its canonical form.
func GuidLiteral(id uuid.UUID) string {
	return `new System.Guid("` + id.String() + `")`
}

// DateTimeLiteral writes t as a constructor call over its wall-clock tick
// count and kind. UTC and the process-local zone keep their kind; any other
// location is written as unspecified wall-clock time.
func DateTimeLiteral(t time.Time) string {
	kind := "Unspecified"
	switch t.Location() {
	case time.UTC:
		kind = "Utc"
	case time.Local:
		kind = "Local"
	}

	_, offset := t.Zone()
	ticks := (t.Unix()+int64(offset)+secondsToUnixEpoch)*ticksPerSecond + int64(t.Nanosecond()/nanosPerTick)

	return "new System.DateTime(" + strconv.FormatInt(ticks, 10) + "L, System.DateTimeKind." + kind + ")"
}
