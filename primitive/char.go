package primitive

import (
	"unicode/utf16"

	"literal-generator/utils"
)

// Char is a single UTF-16 code unit. Go has no distinct character type (rune
// is int32), so values that must render as character literals use Char.
type Char rune

// IsValid reports whether c fits in one UTF-16 code unit and is not a lone surrogate.
func (c Char) IsValid() bool {
	return utils.IsInRange(0, c, 0xFFFF) && !utf16.IsSurrogate(rune(c))
}

func (c Char) String() string {
	return string(rune(c))
}
