// Package textnorm cleans raw bilingual text before it is parsed or matched.
//
// Everything here is pure and safe for concurrent use: x/text transformers
// are stateful, so each call builds its own chain.
package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var entityRe = regexp.MustCompile(`(?i)&([a-z0-9]+|#[0-9]{1,6}|#x[0-9a-f]{1,6});`)

var namedEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": `"`,
	"apos": "'",
}

// Normalize decodes character entities, applies NFC, removes zero-width
// characters and byte-order marks, collapses whitespace and trims.
// Nested escapes such as "&amp;amp;lt;" are decoded one layer per pass until
// the text stops changing, so Normalize(Normalize(x)) == Normalize(x).
// After the first pass, a pass that changes the text shortens it, so the
// loop terminates.
func Normalize(raw string) string {
	s := raw
	for {
		next := normalizeOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	if s == "" {
		return ""
	}
	s = DecodeEntities(s)

	t := transform.Chain(norm.NFC, runes.Remove(runes.Predicate(isInvisible)))
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	} else {
		s = strings.Map(func(r rune) rune {
			if isInvisible(r) {
				return -1
			}
			return r
		}, norm.NFC.String(s))
	}

	return CollapseSpaces(s)
}

// DecodeEntities replaces the five XML named entities and decimal or
// hexadecimal numeric entities with their characters. Anything else,
// including numeric references to invalid code points, is left unchanged.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityRe.ReplaceAllStringFunc(s, func(m string) string {
		body := m[1 : len(m)-1]
		if lit, ok := namedEntities[body]; ok {
			return lit
		}
		if body[0] != '#' {
			return m
		}

		var (
			n   uint64
			err error
		)
		if body[1] == 'x' || body[1] == 'X' {
			n, err = strconv.ParseUint(body[2:], 16, 32)
		} else {
			n, err = strconv.ParseUint(body[1:], 10, 32)
		}
		if err != nil || n == 0 || !utf8.ValidRune(rune(n)) {
			return m
		}
		return string(rune(n))
	})
}

// CollapseSpaces folds every run of Unicode whitespace into one space and trims.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isInvisible(r rune) bool {
	return (r >= 0x200B && r <= 0x200D) || r == 0xFEFF
}
