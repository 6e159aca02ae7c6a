package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// GetEntry returns one entry with defaults applied.
func (s *Service) GetEntry(ctx context.Context, id string) (*domain.LexicalEntry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	out := entry.WithDefaults()
	return &out, nil
}

// RecordView bumps the popularity counter of an entry. Failures are only logged.
func (s *Service) RecordView(ctx context.Context, id string) {
	if err := s.entries.IncrementSearchCount(ctx, id); err != nil {
		s.log.WarnContext(ctx, "record view failed",
			slog.String("entry_id", id),
			slog.String("error", err.Error()),
		)
	}
}
