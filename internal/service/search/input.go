package search

import (
	"fmt"

	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// Input holds the parameters of one search call. An empty Mode uses the
// configured default; a zero Limit uses the configured default limit.
type Input struct {
	Query string
	Limit int
	Mode  domain.SearchMode
}

// Validate rejects unknown modes and queries that are empty once normalized
// (blank, zero-width only, entity-encoded spaces) with domain.ErrInvalidQuery.
func (i *Input) Validate() error {
	if textnorm.Normalize(i.Query) == "" {
		return fmt.Errorf("query is empty: %w", domain.ErrInvalidQuery)
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		return fmt.Errorf("unknown mode %q: %w", i.Mode, domain.ErrInvalidQuery)
	}
	return nil
}
