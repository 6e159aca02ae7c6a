// Package cellparser extracts structured fields from one spreadsheet cell of
// the form "PHONETIC (grammar) phrase: meaning. phrase2: meaning2 ...".
//
// Parsing runs an ordered list of named rules over the cell text. Field rules
// always run; the first gloss rule that matches decides the main meaning.
package cellparser

import (
	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// Example is one "phrase: meaning" pair found in a cell.
type Example struct {
	Phrase  string
	Meaning string
}

// String flattens the pair the way it is stored on an entry.
func (e Example) String() string {
	return e.Phrase + ": " + e.Meaning
}

// Result is the structured content of a cell.
type Result struct {
	Phonetic    string
	GrammarNote string
	MainMeaning string
	Examples    []Example
	// Rules lists the names of the rules that matched, in order.
	Rules []string
}

// FlatExamples returns the example pairs as "phrase: meaning" strings.
func (r Result) FlatExamples() []string {
	out := make([]string, 0, len(r.Examples))
	for _, ex := range r.Examples {
		out = append(out, ex.String())
	}
	return out
}

// Parse runs the rule pipeline over text. An empty cell yields an empty Result.
func Parse(text string) Result {
	work := textnorm.Normalize(text)
	if work == "" {
		return Result{}
	}

	var res Result
	for _, r := range fieldRules {
		matched, rest, out := r.apply(work, res)
		if matched {
			res = out
			res.Rules = append(res.Rules, r.name)
			work = rest
		}
	}

	for _, r := range glossRules {
		matched, rest, out := r.apply(work, res)
		if matched {
			res = out
			res.Rules = append(res.Rules, r.name)
			work = rest
			break
		}
	}

	// A cell with a phonetic but no gloss keeps an empty meaning; callers
	// fall back to the raw cell text. Only a cell with neither gets the placeholder.
	if res.MainMeaning == "" && res.Phonetic == "" {
		res.MainMeaning = domain.NoMeaningPlaceholder
	}
	return res
}
