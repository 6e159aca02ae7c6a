// Package search implements the multi-stage lexical search over dictionary entries.
package search

import (
	"context"
	"log/slog"

	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	FindEq(ctx context.Context, field, value string, limit int) ([]domain.LexicalEntry, error)
	FindPrefix(ctx context.Context, field, prefix string, limit int) ([]domain.LexicalEntry, error)
	ListByPopularity(ctx context.Context, limit int) ([]domain.LexicalEntry, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs searches. It holds no per-call state and is safe for concurrent use.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	cfg     config.SearchConfig
}

// NewService creates a new search service.
func NewService(logger *slog.Logger, entries entryRepo, cfg config.SearchConfig) *Service {
	return &Service{
		log:     logger.With("service", "search"),
		entries: entries,
		cfg:     cfg,
	}
}

// clampLimit ensures a limit is within [1, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
