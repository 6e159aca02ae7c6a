// Package entrybuilder turns parser output into a normalized LexicalEntry.
package entrybuilder

import (
	"time"

	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// Fields is the parser output for one record.
type Fields struct {
	Word            string
	Transliteration string
	Meaning         string
	// FallbackMeaning is used when Meaning is empty, e.g. the raw spreadsheet cell.
	FallbackMeaning string
	Examples        []string
	GrammarNote     string
	Note            string
	Category        domain.Category
	Section         string
	Source          domain.Source
	// RawInput is the source text reported with validation failures.
	RawInput string
}

// Builder applies defaults and validation. The zero value is not usable; call New.
type Builder struct {
	now func() time.Time
}

// New creates a Builder stamping entries with the current time.
func New() *Builder {
	return &Builder{now: time.Now}
}

// NewWithClock creates a Builder with a custom clock.
func NewWithClock(now func() time.Time) *Builder {
	return &Builder{now: now}
}

// Build returns the entry for f. It fails with a *domain.ValidationError
// when the word is empty after normalization. The id is left empty for the
// store to assign.
func (b *Builder) Build(f Fields) (domain.LexicalEntry, error) {
	word := textnorm.Normalize(f.Word)
	if word == "" {
		return domain.LexicalEntry{}, domain.NewInputError("word", "required", f.RawInput)
	}

	meaning := textnorm.Normalize(f.Meaning)
	if meaning == "" {
		meaning = textnorm.Normalize(f.FallbackMeaning)
	}
	if meaning == "" {
		meaning = domain.NoMeaningPlaceholder
	}

	translit := textnorm.Normalize(f.Transliteration)
	if translit == "" {
		translit = word
	}

	examples := make([]string, 0, len(f.Examples))
	for _, ex := range f.Examples {
		if ex = textnorm.Normalize(ex); ex != "" {
			examples = append(examples, ex)
		}
	}

	category := f.Category
	if category == "" {
		category = domain.CategoryGeneral
	}
	source := f.Source
	if source == "" {
		source = domain.SourceManual
	}

	now := b.now().UTC()
	return domain.LexicalEntry{
		Word:            word,
		Transliteration: translit,
		Meaning:         meaning,
		Examples:        examples,
		GrammarNote:     textnorm.Normalize(f.GrammarNote),
		Note:            textnorm.Normalize(f.Note),
		Category:        category,
		Section:         textnorm.Normalize(f.Section),
		Source:          source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
