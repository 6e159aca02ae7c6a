package lexicon

import (
	"context"
	"fmt"
	"sort"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// Categories returns the distinct categories present in the collection, sorted.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	all, err := s.entries.ListByPopularity(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	seen := make(map[domain.Category]bool)
	out := []domain.Category{}
	for _, e := range all {
		c := e.WithDefaults().Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Popular returns the most viewed entries. Limit is clamped to the
// configured maximum and defaults to the configured search limit.
func (s *Service) Popular(ctx context.Context, limit int) ([]domain.LexicalEntry, error) {
	switch {
	case limit <= 0:
		limit = s.cfg.DefaultLimit
	case limit > s.cfg.MaxLimit:
		limit = s.cfg.MaxLimit
	}

	entries, err := s.entries.ListByPopularity(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("popular: %w", err)
	}
	for i := range entries {
		entries[i] = entries[i].WithDefaults()
	}
	return entries, nil
}
