package primitive

import (
	"math"
	"reflect"
	"strconv"
)

// Format writes a number or boolean as its direct textual representation.
// Values of any other kind report false.
func Format(v reflect.Value) (string, bool) {
	kind := FromReflectKind(v.Type())
	if !kind.IsDirect() {
		return "", false
	}

	switch {
	case kind == KindBool:
		return strconv.FormatBool(v.Bool()), true
	case kind.IsSigned():
		return strconv.FormatInt(v.Int(), 10), true
	case kind.IsUnsigned():
		return strconv.FormatUint(v.Uint(), 10), true
	default:
		return formatFloat(v.Float(), kind.Bits()), true
	}
}

// formatFloat mirrors the round-trip "G" form; non-finite values are written
// as the named constants of the matching floating-point type.
func formatFloat(f float64, bits int) string {
	owner := "System.Double"
	if bits == 32 {
		owner = "System.Single"
	}

	switch {
	case math.IsNaN(f):
		return owner + ".NaN"
	case math.IsInf(f, 1):
		return owner + ".PositiveInfinity"
	case math.IsInf(f, -1):
		return owner + ".NegativeInfinity"
	}

	return strconv.FormatFloat(f, 'G', -1, bits)
}
