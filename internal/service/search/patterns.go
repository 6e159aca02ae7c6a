package search

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// queryPatterns returns the casing variants of q tried by every stage:
// as typed, lower, upper and title case. Duplicates are dropped.
func queryPatterns(q string) []string {
	variants := []string{
		q,
		strings.ToLower(q),
		strings.ToUpper(q),
		cases.Title(language.Und).String(q),
	}

	out := make([]string, 0, len(variants))
	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

var (
	clauseSep   = regexp.MustCompile(`[,;.]`)
	parenthetic = regexp.MustCompile(`\([^)]*\)`)
	numericOnly = regexp.MustCompile(`^[0-9\s]+$`)
)

// meaningClauses splits a gloss into folded sub-clauses: split on commas,
// semicolons and periods, parenthetical content removed, numeric-only
// fragments dropped.
func meaningClauses(meaning string) []string {
	parts := clauseSep.Split(parenthetic.ReplaceAllString(meaning, " "), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = textnorm.CollapseSpaces(p)
		if p == "" || numericOnly.MatchString(p) {
			continue
		}
		out = append(out, textnorm.Fold(p))
	}
	return out
}

// meaningMatcher tests glosses against the folded query patterns.
type meaningMatcher struct {
	folded []string
}

func newMeaningMatcher(patterns []string) meaningMatcher {
	seen := make(map[string]bool, len(patterns))
	m := meaningMatcher{}
	for _, p := range patterns {
		f := textnorm.Fold(p)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		m.folded = append(m.folded, f)
	}
	return m
}

// matches reports whether a pattern occurs in the gloss or equals one of its clauses.
func (m meaningMatcher) matches(meaning string) bool {
	if meaning == "" {
		return false
	}
	folded := textnorm.Fold(meaning)
	for _, p := range m.folded {
		if strings.Contains(folded, p) {
			return true
		}
	}
	for _, clause := range meaningClauses(meaning) {
		for _, p := range m.folded {
			if clause == p {
				return true
			}
		}
	}
	return false
}

// startsWith reports whether the gloss begins with a pattern.
func (m meaningMatcher) startsWith(meaning string) bool {
	folded := textnorm.Fold(meaning)
	for _, p := range m.folded {
		if strings.HasPrefix(folded, p) {
			return true
		}
	}
	return false
}
