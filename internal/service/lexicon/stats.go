package lexicon

import (
	"context"
	"fmt"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// Stats summarizes the collection and its data quality.
type Stats struct {
	Total      int
	ByCategory map[domain.Category]int
	BySource   map[domain.Source]int

	// Entries whose meaning is empty or the no-meaning placeholder.
	NoMeaning         int
	NoExamples        int
	NoTransliteration int

	Samples []domain.LexicalEntry
}

// Stats scans the whole collection.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.entries.ListByPopularity(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	st := &Stats{
		Total:      len(all),
		ByCategory: make(map[domain.Category]int),
		BySource:   make(map[domain.Source]int),
	}
	for _, raw := range all {
		e := raw.WithDefaults()
		st.ByCategory[e.Category]++

		src := e.Source
		if src == "" {
			src = domain.SourceManual
		}
		st.BySource[src]++

		if !e.HasMeaning() {
			st.NoMeaning++
		}
		if len(e.Examples) == 0 {
			st.NoExamples++
		}
		if raw.Transliteration == "" {
			st.NoTransliteration++
		}
		if len(st.Samples) < statsSampleSize {
			st.Samples = append(st.Samples, e)
		}
	}
	return st, nil
}
