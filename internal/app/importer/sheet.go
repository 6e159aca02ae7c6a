package importer

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dkozTA/thai-dict-web/internal/app/importer/cellparser"
	"github.com/dkozTA/thai-dict-web/internal/app/importer/entrybuilder"
	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

// Spreadsheet columns.
const (
	colWord     = 0
	colExamples = 1
	colCell     = 2
)

var numberedRe = regexp.MustCompile(`\d+\.\s*`)

// SheetImporter imports a grid of cells: row 0 is a header, column A the
// word, column B numbered example text and column C the combined
// phonetic/meaning/example cell.
type SheetImporter struct {
	runner
}

// NewSheetImporter creates a SheetImporter. A nil builder uses the wall clock.
func NewSheetImporter(logger *slog.Logger, writer entryWriter, builder *entrybuilder.Builder, cfg config.ImportConfig) *SheetImporter {
	return &SheetImporter{runner: newRunner(logger, writer, builder, cfg, "sheet")}
}

// Run parses rows and, unless dryRun, writes the records.
func (s *SheetImporter) Run(ctx context.Context, rows [][]string, dryRun bool) BatchResult {
	res := s.Parse(rows)
	s.finish(ctx, &res, dryRun, s.cfg.SheetBatchSize)
	return res
}

// Parse builds entries from rows without writing them. At most
// MaxSheetRows records are built.
func (s *SheetImporter) Parse(rows [][]string) BatchResult {
	var res BatchResult
	for i := 1; i < len(rows); i++ {
		if s.cfg.MaxSheetRows > 0 && len(res.Records) >= s.cfg.MaxSheetRows {
			break
		}

		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		entry, ok, err := s.parseRow(row)
		switch {
		case err != nil:
			res.Errors = append(res.Errors, recordError(i+1, rawRow(row), err))
		case !ok:
			res.Skipped++
		default:
			res.Records = append(res.Records, entry)
		}
	}
	return res
}

// parseRow returns ok=false for rows without a combined cell.
func (s *SheetImporter) parseRow(row []string) (domain.LexicalEntry, bool, error) {
	word := textnorm.Normalize(cell(row, colWord))
	examplesRaw := textnorm.Normalize(cell(row, colExamples))
	text := textnorm.Normalize(cell(row, colCell))
	if text == "" {
		return domain.LexicalEntry{}, false, nil
	}

	parsed := cellparser.Parse(text)
	examples := splitNumbered(examplesRaw)
	examples = append(examples, parsed.FlatExamples()...)

	entry, err := s.builder.Build(entrybuilder.Fields{
		Word:            word,
		Transliteration: parsed.Phonetic,
		Meaning:         parsed.MainMeaning,
		FallbackMeaning: text,
		Examples:        examples,
		GrammarNote:     parsed.GrammarNote,
		Source:          domain.SourceSpreadsheet,
		RawInput:        rawRow(row),
	})
	if err != nil {
		return domain.LexicalEntry{}, false, err
	}
	return entry, true, nil
}

// splitNumbered splits "1. a 2. b" into its items; text without numbering
// is returned as a single item.
func splitNumbered(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range numberedRe.Split(raw, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{raw}
	}
	return out
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func rawRow(row []string) string {
	return strings.Join(row[:min(len(row), colCell+1)], " | ")
}
