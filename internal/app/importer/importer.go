// Package importer runs spreadsheet and document imports: it reads the
// input, parses every row sequentially and writes the built entries to the
// store in chunks.
package importer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dkozTA/thai-dict-web/internal/app/importer/entrybuilder"
	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// ErrUnsupportedFormat is returned by the readers for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported file format")

type entryWriter interface {
	SaveBatch(ctx context.Context, entries []domain.LexicalEntry) ([]string, error)
}

// runner holds what both import kinds share.
type runner struct {
	log     *slog.Logger
	writer  entryWriter
	builder *entrybuilder.Builder
	cfg     config.ImportConfig
}

func newRunner(logger *slog.Logger, writer entryWriter, builder *entrybuilder.Builder, cfg config.ImportConfig, kind string) runner {
	if builder == nil {
		builder = entrybuilder.New()
	}
	return runner{
		log:     logger.With("importer", kind),
		writer:  writer,
		builder: builder,
		cfg:     cfg,
	}
}

func (r *runner) finish(ctx context.Context, res *BatchResult, dryRun bool, size int) {
	res.DryRun = dryRun
	if !dryRun && len(res.Records) > 0 {
		r.writeRecords(ctx, res, size, r.cfg.BatchDelay)
	}

	s := res.Summary(r.cfg.ErrorSamples)
	r.log.Info("import completed",
		slog.Int("parsed", s.Parsed),
		slog.Int("written", s.Written),
		slog.Int("failed", s.Failed),
		slog.Int("skipped", s.Skipped),
		slog.Int("errors", s.ErrorCount),
		slog.Bool("dry_run", dryRun),
	)
	for _, e := range s.Samples {
		r.log.Warn("rejected record",
			slog.Int("line", e.LineNumber),
			slog.String("raw", e.Raw),
			slog.String("reason", e.Reason),
		)
	}
}

func recordError(line int, raw string, err error) RecordError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.RawInput != "" {
		raw = verr.RawInput
	}
	return RecordError{LineNumber: line, Raw: strings.TrimSpace(raw), Reason: err.Error()}
}
