// Package rowparser parses lines of extracted document text into entries.
//
// A document is read top to bottom. A Tracker follows section and table
// headings so every row inherits the category of the section it sits in;
// Parser turns one accepted row into an entry.
package rowparser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dkozTA/thai-dict-web/internal/app/importer/entrybuilder"
	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// DefaultMinLength is the shortest line, in characters, considered a row.
const DefaultMinLength = 5

// maxExamples caps the examples split off a meaning.
const maxExamples = 3

// Fields is the split content of one row.
type Fields struct {
	Word     string
	Phonetic string
	Meaning  string
	Examples []string
	// Strategy names the split strategy that produced the columns.
	Strategy string
}

var (
	punctOnlyRe   = regexp.MustCompile(`^[0-9\s\-|.]+$`)
	enumerationRe = regexp.MustCompile(`^\d+\.?\s*`)
	meaningSepRe  = regexp.MustCompile(`[,;]`)
)

// Parser turns accepted rows into entries.
type Parser struct {
	builder   *entrybuilder.Builder
	minLength int
}

// New creates a Parser. minLength <= 0 selects DefaultMinLength.
func New(builder *entrybuilder.Builder, minLength int) *Parser {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &Parser{builder: builder, minLength: minLength}
}

// ParseLine parses one row under the given section state. A nil entry with a
// nil error means the line is not a vocabulary row.
func (p *Parser) ParseLine(line string, lineNumber int, st State) (*domain.LexicalEntry, error) {
	f, ok := p.Split(line)
	if !ok {
		return nil, nil
	}

	entry, err := p.builder.Build(entrybuilder.Fields{
		Word:            f.Word,
		Transliteration: f.Phonetic,
		Meaning:         f.Meaning,
		Examples:        f.Examples,
		Category:        st.Category,
		Section:         st.Section,
		Source:          domain.SourceDocument,
		RawInput:        line,
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Split rejects non-row lines and splits a row into word, phonetic and meaning.
func (p *Parser) Split(line string) (Fields, bool) {
	line = strings.TrimSpace(line)
	if p.reject(line) {
		return Fields{}, false
	}

	line = strings.TrimSpace(enumerationRe.ReplaceAllString(line, ""))
	if line == "" {
		return Fields{}, false
	}

	parts, strategy := splitColumns(line)
	if len(parts) < 2 {
		return Fields{}, false
	}

	var f Fields
	f.Strategy = strategy
	f.Word = textnorm.Normalize(parts[0])
	if len(parts) == 2 {
		f.Meaning = textnorm.Normalize(parts[1])
	} else {
		f.Phonetic = textnorm.Normalize(parts[1])
		f.Meaning = textnorm.Normalize(strings.Join(parts[2:], " "))
	}
	if f.Word == "" || f.Meaning == "" {
		return Fields{}, false
	}

	f.Meaning, f.Examples = SplitMeaning(f.Meaning)
	return f, true
}

func (p *Parser) reject(line string) bool {
	return utf8.RuneCountInString(line) < p.minLength ||
		punctOnlyRe.MatchString(line) ||
		strings.Contains(line, "Tiếng Thái") ||
		strings.Contains(line, "Phiên âm") ||
		IsHeaderOrSeparator(line)
}

// SplitMeaning splits a gloss on commas and semicolons. The first segment is
// the main meaning; up to three later segments longer than two characters
// become examples.
func SplitMeaning(text string) (string, []string) {
	parts := meaningSepRe.Split(text, -1)
	if len(parts) < 2 {
		return text, nil
	}

	var examples []string
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) <= 2 {
			continue
		}
		examples = append(examples, part)
		if len(examples) == maxExamples {
			break
		}
	}
	return strings.TrimSpace(parts[0]), examples
}
