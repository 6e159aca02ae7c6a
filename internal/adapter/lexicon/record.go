package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// storedEntry is the persisted shape of an entry. The id lives on the document key.
type storedEntry struct {
	ID              string          `json:"-"`
	Word            string          `json:"word"`
	Transliteration string          `json:"transliteration"`
	Meaning         string          `json:"meaning"`
	Examples        []string        `json:"examples"`
	GrammarNote     string          `json:"grammar_note"`
	Note            string          `json:"note"`
	Category        domain.Category `json:"category"`
	Section         string          `json:"section,omitempty"`
	Source          domain.Source   `json:"source"`
	SearchCount     int             `json:"search_count"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// record is the read shape. It accepts the field names used by older
// imports and examples stored as one newline-delimited string.
type record struct {
	Word               string          `json:"word"`
	Transliteration    string          `json:"transliteration"`
	Phonetic           string          `json:"phonetic"`
	WordTransliterated string          `json:"word_transliterated"`
	Meaning            string          `json:"meaning"`
	VietnameseMeaning  string          `json:"vietnamese_meaning"`
	Examples           json.RawMessage `json:"examples"`
	GrammarNote        string          `json:"grammar_note"`
	Note               string          `json:"note"`
	Category           domain.Category `json:"category"`
	Section            string          `json:"section"`
	Source             domain.Source   `json:"source"`
	SearchCount        float64         `json:"search_count"`
	CreatedAt          *time.Time      `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at"`
}

func decode(doc domain.Document) (domain.LexicalEntry, error) {
	var rec record
	if err := json.Unmarshal(doc.Data, &rec); err != nil {
		return domain.LexicalEntry{}, fmt.Errorf("decode entry %s: %w", doc.ID, err)
	}

	examples, err := decodeExamples(rec.Examples)
	if err != nil {
		return domain.LexicalEntry{}, fmt.Errorf("decode entry %s examples: %w", doc.ID, err)
	}

	e := domain.LexicalEntry{
		ID:              doc.ID,
		Word:            rec.Word,
		Transliteration: firstNonEmpty(rec.Transliteration, rec.Phonetic, rec.WordTransliterated),
		Meaning:         firstNonEmpty(rec.Meaning, rec.VietnameseMeaning),
		Examples:        examples,
		GrammarNote:     rec.GrammarNote,
		Note:            rec.Note,
		Category:        rec.Category,
		Section:         rec.Section,
		Source:          rec.Source,
		SearchCount:     int(rec.SearchCount),
	}
	if rec.CreatedAt != nil {
		e.CreatedAt = *rec.CreatedAt
	}
	if rec.UpdatedAt != nil {
		e.UpdatedAt = *rec.UpdatedAt
	}
	return e, nil
}

func decodeExamples(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var blob string
		if err := json.Unmarshal(raw, &blob); err != nil {
			return nil, err
		}
		return domain.SplitExamples(blob), nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
