package domain

import (
	"strings"
	"time"
)

// NoMeaningPlaceholder is stored as the meaning of entries whose source text
// carried no extractable gloss.
const NoMeaningPlaceholder = "Chưa có nghĩa"

// LexicalEntry is one normalized vocabulary record.
type LexicalEntry struct {
	ID              string    `json:"id"`
	Word            string    `json:"word"`
	Transliteration string    `json:"transliteration"`
	Meaning         string    `json:"meaning"`
	Examples        []string  `json:"examples"`
	GrammarNote     string    `json:"grammar_note"`
	Note            string    `json:"note"`
	Category        Category  `json:"category"`
	Section         string    `json:"section,omitempty"`
	Source          Source    `json:"source"`
	SearchCount     int       `json:"search_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WithDefaults returns a copy of e with absent optional fields filled in:
// nil examples become an empty list, blank examples are dropped, an empty
// category becomes general and an empty transliteration falls back to word.
func (e LexicalEntry) WithDefaults() LexicalEntry {
	examples := make([]string, 0, len(e.Examples))
	for _, ex := range e.Examples {
		if strings.TrimSpace(ex) != "" {
			examples = append(examples, ex)
		}
	}
	e.Examples = examples

	if e.Category == "" {
		e.Category = CategoryGeneral
	}
	if e.Transliteration == "" {
		e.Transliteration = e.Word
	}
	return e
}

// HasMeaning reports whether the entry carries a real gloss rather than the placeholder.
func (e *LexicalEntry) HasMeaning() bool {
	return e.Meaning != "" && e.Meaning != NoMeaningPlaceholder
}

// SplitExamples splits a newline-delimited example blob into its non-blank lines.
func SplitExamples(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
