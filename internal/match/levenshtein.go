package match

import (
	"strings"
	"unicode"
)

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-rune insertions, deletions or substitutions turning one
// into the other.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Normalize folds case and drops separators, so "Order_Page", "orderPage"
// and "order-page" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Closest returns the candidate nearest to name after normalization. A
// candidate qualifies when at most a third of its normalized runes differ.
func Closest(name string, candidates []string) (string, bool) {
	target := Normalize(name)

	best, bestDist := "", -1
	for _, c := range candidates {
		norm := Normalize(c)

		d := Levenshtein(target, norm)
		if d*3 > len([]rune(norm)) {
			continue
		}

		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist >= 0
}
