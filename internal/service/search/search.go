package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

const (
	fieldWord            = "word"
	fieldTransliteration = "transliteration"
	fieldMeaning         = "meaning"
)

// collector accumulates hits across stages. An entry keeps the tag of the
// first stage that found it.
type collector struct {
	limit int
	seen  map[string]bool
	hits  []Hit
}

func newCollector(limit int) *collector {
	return &collector{limit: limit, seen: make(map[string]bool)}
}

func (c *collector) full() bool {
	return len(c.hits) >= c.limit
}

func (c *collector) add(entries []domain.LexicalEntry, mt domain.MatchType, field string) {
	for _, e := range entries {
		if c.seen[e.ID] {
			continue
		}
		c.seen[e.ID] = true
		c.hits = append(c.hits, Hit{Entry: e, MatchType: mt, MatchedField: field})
	}
}

// Search runs the stage cascade for input. Store failures abort the whole
// call with domain.ErrBackendUnavailable and no partial items.
func (s *Service) Search(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	query := textnorm.Normalize(input.Query)
	limit := clampLimit(input.Limit, s.cfg.MaxLimit, s.cfg.DefaultLimit)
	mode := s.resolveMode(input.Mode, query)
	patterns := queryPatterns(query)

	col := newCollector(limit)

	if mode == domain.SearchModeMeaning || mode == domain.SearchModeAll {
		if err := s.meaningStage(ctx, col, patterns); err != nil {
			return nil, unavailable(err)
		}
	}

	if !col.full() && (mode == domain.SearchModePhonetic || mode == domain.SearchModeAll) {
		if err := s.lookupStage(ctx, col, patterns, fieldTransliteration, domain.MatchTypePhonetic); err != nil {
			return nil, unavailable(err)
		}
	}

	if !col.full() {
		if err := s.lookupStage(ctx, col, patterns, fieldWord, domain.MatchTypeWord); err != nil {
			return nil, unavailable(err)
		}
	}

	total := len(col.hits)
	items := col.hits
	if len(items) > limit {
		items = items[:limit]
	}
	for i := range items {
		items[i].Entry = items[i].Entry.WithDefaults()
	}

	s.log.DebugContext(ctx, "search completed",
		slog.String("mode", mode.String()),
		slog.Int("limit", limit),
		slog.Int("total_found", total),
	)

	return &Result{Items: items, TotalFound: total, Mode: mode}, nil
}

func (s *Service) resolveMode(mode domain.SearchMode, query string) domain.SearchMode {
	if mode == "" {
		mode = domain.SearchMode(s.cfg.DefaultMode)
	}
	if mode == domain.SearchModeAuto || mode == "" {
		return textnorm.InferMode(query)
	}
	return mode
}

// meaningStage scans every entry, most viewed first, and keeps glosses that
// match a pattern. Glosses starting with a pattern are moved ahead.
func (s *Service) meaningStage(ctx context.Context, col *collector, patterns []string) error {
	all, err := s.entries.ListByPopularity(ctx, 0)
	if err != nil {
		return err
	}

	m := newMeaningMatcher(patterns)
	var matched []domain.LexicalEntry
	for _, e := range all {
		if m.matches(e.Meaning) {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return m.startsWith(matched[i].Meaning) && !m.startsWith(matched[j].Meaning)
	})

	col.add(matched, domain.MatchTypeMeaning, fieldMeaning)
	return nil
}

// lookupStage issues exact lookups for every pattern, then prefix-range
// lookups, stopping once the collector is full.
func (s *Service) lookupStage(ctx context.Context, col *collector, patterns []string, field string, mt domain.MatchType) error {
	for _, p := range patterns {
		if col.full() {
			return nil
		}
		found, err := s.entries.FindEq(ctx, field, p, col.limit)
		if err != nil {
			return err
		}
		col.add(found, mt, field)
	}

	for _, p := range patterns {
		if col.full() {
			return nil
		}
		found, err := s.entries.FindPrefix(ctx, field, p, col.limit)
		if err != nil {
			return err
		}
		col.add(found, mt, field)
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("search: %w: %w", domain.ErrBackendUnavailable, err)
}
