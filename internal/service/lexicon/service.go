// Package lexicon implements entry lookup and collection maintenance:
// categories, popular entries, bulk clearing by provenance and statistics.
package lexicon

import (
	"context"
	"log/slog"

	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// clearPageSize is how many entries are fetched per round while clearing.
const clearPageSize = 500

// statsSampleSize is how many entries Stats returns as samples.
const statsSampleSize = 5

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByID(ctx context.Context, id string) (*domain.LexicalEntry, error)
	ListByPopularity(ctx context.Context, limit int) ([]domain.LexicalEntry, error)
	FindBySource(ctx context.Context, source domain.Source, limit int) ([]domain.LexicalEntry, error)
	IncrementSearchCount(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements lexicon lookups and maintenance.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	cfg     config.SearchConfig
}

// NewService creates a new lexicon service.
func NewService(logger *slog.Logger, entries entryRepo, cfg config.SearchConfig) *Service {
	return &Service{
		log:     logger.With("service", "lexicon"),
		entries: entries,
		cfg:     cfg,
	}
}
