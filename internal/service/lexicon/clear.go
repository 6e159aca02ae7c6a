package lexicon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// ClearBySource deletes every entry with the given provenance tag, page by
// page, and returns how many were deleted. On error the count reflects the
// deletions done so far.
func (s *Service) ClearBySource(ctx context.Context, source domain.Source) (int, error) {
	if !source.IsValid() {
		return 0, domain.NewValidationError("source", fmt.Sprintf("unknown source %q", source))
	}

	deleted := 0
	for {
		page, err := s.entries.FindBySource(ctx, source, clearPageSize)
		if err != nil {
			return deleted, fmt.Errorf("clear %s: %w", source, err)
		}
		if len(page) == 0 {
			break
		}

		for _, e := range page {
			if err := s.entries.Delete(ctx, e.ID); err != nil {
				return deleted, fmt.Errorf("clear %s: delete %s: %w", source, e.ID, err)
			}
			deleted++
		}
	}

	s.log.InfoContext(ctx, "entries cleared",
		slog.String("source", source.String()),
		slog.Int("deleted", deleted),
	)
	return deleted, nil
}

// ClearAll deletes the entries written by every import source.
func (s *Service) ClearAll(ctx context.Context) (int, error) {
	total := 0
	for _, src := range domain.ImportSources() {
		n, err := s.ClearBySource(ctx, src)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
