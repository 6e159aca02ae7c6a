package importer

import "github.com/dkozTA/thai-dict-web/internal/domain"

// RecordError describes one rejected row or line.
type RecordError struct {
	LineNumber int
	Raw        string
	Reason     string
}

// BatchResult is the outcome of one import run.
type BatchResult struct {
	// Records are the entries built from the input, with ids filled in for
	// chunks that were written.
	Records []domain.LexicalEntry
	Errors  []RecordError
	// Skipped counts inputs that were not vocabulary rows.
	Skipped int
	Written int
	Failed  int
	DryRun  bool
}

// Summary is the condensed report of a BatchResult.
type Summary struct {
	Parsed     int
	Written    int
	Failed     int
	Skipped    int
	ErrorCount int
	Samples    []RecordError
	// MoreErrors is the number of errors not included in Samples.
	MoreErrors int
}

// Summary reports counts and at most samples errors.
func (r BatchResult) Summary(samples int) Summary {
	s := Summary{
		Parsed:     len(r.Records),
		Written:    r.Written,
		Failed:     r.Failed,
		Skipped:    r.Skipped,
		ErrorCount: len(r.Errors),
	}
	if samples < 0 {
		samples = 0
	}
	n := min(samples, len(r.Errors))
	s.Samples = append([]RecordError(nil), r.Errors[:n]...)
	s.MoreErrors = len(r.Errors) - n
	return s
}

// Categories returns the distinct categories of records in first-seen order.
func (r BatchResult) Categories() []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, rec := range r.Records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			out = append(out, rec.Category)
		}
	}
	return out
}
