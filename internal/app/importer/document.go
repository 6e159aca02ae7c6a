package importer

import (
	"context"
	"log/slog"

	"github.com/dkozTA/thai-dict-web/internal/app/importer/entrybuilder"
	"github.com/dkozTA/thai-dict-web/internal/app/importer/rowparser"
	"github.com/dkozTA/thai-dict-web/internal/config"
)

// DocumentImporter imports extracted document text line by line, tracking
// section headings to categorize rows.
type DocumentImporter struct {
	runner
	parser *rowparser.Parser
}

// NewDocumentImporter creates a DocumentImporter. A nil builder uses the wall clock.
func NewDocumentImporter(logger *slog.Logger, writer entryWriter, builder *entrybuilder.Builder, cfg config.ImportConfig) *DocumentImporter {
	r := newRunner(logger, writer, builder, cfg, "document")
	return &DocumentImporter{
		runner: r,
		parser: rowparser.New(r.builder, cfg.MinLineLength),
	}
}

// Run parses text and, unless dryRun, writes the records.
func (d *DocumentImporter) Run(ctx context.Context, text string, dryRun bool) BatchResult {
	res := d.Parse(text)
	d.finish(ctx, &res, dryRun, d.cfg.DocumentBatchSize)
	return res
}

// Parse builds entries from text without writing them. At most
// MaxDocumentRecords records are built.
func (d *DocumentImporter) Parse(text string) BatchResult {
	var res BatchResult

	lines := rowparser.SplitLines(text)
	tracker := rowparser.NewTracker()
	for i, line := range lines {
		if d.cfg.MaxDocumentRecords > 0 && len(res.Records) >= d.cfg.MaxDocumentRecords {
			d.log.Info("record limit reached", slog.Int("limit", d.cfg.MaxDocumentRecords))
			break
		}

		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		if tracker.Observe(line, next) != rowparser.KindRow {
			continue
		}

		entry, err := d.parser.ParseLine(line, i+1, tracker.State())
		switch {
		case err != nil:
			res.Errors = append(res.Errors, recordError(i+1, line, err))
		case entry == nil:
			res.Skipped++
		default:
			res.Records = append(res.Records, *entry)
		}
	}
	return res
}
