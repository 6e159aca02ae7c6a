package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// forEachChunk calls fn for consecutive chunks of items. A chunk whose fn
// fails is counted as failed and the following chunks still run. Between
// chunks it waits for delay; a cancelled context stops the loop and counts
// the remaining items as failed.
func forEachChunk[T any](ctx context.Context, items []T, size int, delay time.Duration, fn func(start int, chunk []T) error) (ok, failed int) {
	if size <= 0 {
		size = len(items)
	}
	for start := 0; start < len(items); start += size {
		if start > 0 && delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		}
		if ctx.Err() != nil {
			return ok, failed + len(items) - start
		}

		end := min(start+size, len(items))
		if err := fn(start, items[start:end]); err != nil {
			failed += end - start
			continue
		}
		ok += end - start
	}
	return ok, failed
}

// writeRecords stores res.Records in chunks and fills in the assigned ids.
func (r *runner) writeRecords(ctx context.Context, res *BatchResult, size int, delay time.Duration) {
	chunks := 0
	res.Written, res.Failed = forEachChunk(ctx, res.Records, size, delay, func(start int, chunk []domain.LexicalEntry) error {
		chunks++
		ids, err := r.writer.SaveBatch(ctx, chunk)
		if err != nil {
			r.log.Warn("chunk write failed",
				slog.Int("chunk", chunks),
				slog.Int("size", len(chunk)),
				slog.String("error", err.Error()),
			)
			return err
		}
		for i, id := range ids {
			if i < len(chunk) {
				res.Records[start+i].ID = id
			}
		}
		r.log.Debug("chunk written", slog.Int("chunk", chunks), slog.Int("size", len(chunk)))
		return nil
	})
}
