package utils

// Second returns the second of two values, typically the result of a
// two-valued call such as path.Split.
func Second[T any](_ any, t T) T { return t }

// Unpack2 returns the first two elements of s; missing elements are zero.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	case 0:
		return first, second
	case 1:
		return s[0], second
	default:
		return s[0], s[1]
	}
}
