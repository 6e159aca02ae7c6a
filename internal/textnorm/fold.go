package textnorm

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips Latin combining diacritics so that
// Vietnamese text compares accent-insensitively ("ăn" folds to "an").
// Thai vowel and tone marks are outside the stripped range and survive.
func Fold(s string) string {
	s = strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isLatinMark)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ReplaceAll(out, "đ", "d")
}

func isLatinMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}
