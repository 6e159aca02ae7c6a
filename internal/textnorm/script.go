package textnorm

import (
	"unicode"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// targetScripts are the Unicode blocks the dictionary headwords are written in.
var targetScripts = []*unicode.RangeTable{unicode.Thai, unicode.Tai_Viet}

// IsTargetScript reports whether text contains at least one Thai or Tai Viet character.
func IsTargetScript(text string) bool {
	for _, r := range text {
		if unicode.In(r, targetScripts...) {
			return true
		}
	}
	return false
}

// IsTargetRune reports whether r belongs to a target script block.
func IsTargetRune(r rune) bool {
	return unicode.In(r, targetScripts...)
}

// IsPhoneticQuery reports whether text consists only of ASCII letters,
// digits, hyphens, parentheses and spaces, with at least one letter or digit.
func IsPhoneticQuery(text string) bool {
	seen := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			seen = true
		case r == '-', r == '(', r == ')', r == ' ':
		default:
			return false
		}
	}
	return seen
}

// InferMode picks a search mode for a query that did not name one.
func InferMode(query string) domain.SearchMode {
	switch {
	case IsTargetScript(query):
		return domain.SearchModeWord
	case IsPhoneticQuery(query):
		return domain.SearchModePhonetic
	default:
		return domain.SearchModeMeaning
	}
}
