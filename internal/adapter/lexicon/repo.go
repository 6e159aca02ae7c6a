// Package lexicon provides typed LexicalEntry access over a document store.
package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// Repo reads and writes lexical entries in one collection.
type Repo struct {
	store      domain.DocumentStore
	collection string
}

// New creates a repository over store for the given collection.
func New(store domain.DocumentStore, collection string) *Repo {
	return &Repo{store: store, collection: collection}
}

// Collection returns the collection name the repository works on.
func (r *Repo) Collection() string {
	return r.collection
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the entry with the given id or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.LexicalEntry, error) {
	doc, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		return nil, err
	}
	entry, err := decode(*doc)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// storedAliases lists the keys older imports used for a field. Lookups on
// the field also match documents that only carry one of its aliases.
var storedAliases = map[string][]string{
	"transliteration": {"phonetic", "word_transliterated"},
	"meaning":         {"vietnamese_meaning"},
}

// FindEq returns entries whose field (or one of its legacy aliases) equals value.
func (r *Repo) FindEq(ctx context.Context, field, value string, limit int) ([]domain.LexicalEntry, error) {
	return r.findAcross(ctx, field, limit, func(key string) domain.Query {
		return domain.Eq(key, value, limit)
	})
}

// FindPrefix returns entries whose field (or one of its legacy aliases)
// starts with prefix, ordered by that field.
func (r *Repo) FindPrefix(ctx context.Context, field, prefix string, limit int) ([]domain.LexicalEntry, error) {
	return r.findAcross(ctx, field, limit, func(key string) domain.Query {
		return domain.PrefixRange(key, prefix, limit)
	})
}

// findAcross runs build for field and each of its aliases, merges the
// results without duplicates and keeps them ordered by the decoded field.
func (r *Repo) findAcross(ctx context.Context, field string, limit int, build func(key string) domain.Query) ([]domain.LexicalEntry, error) {
	aliases, ok := storedAliases[field]
	if !ok {
		return r.Find(ctx, build(field))
	}

	var out []domain.LexicalEntry
	seen := make(map[string]struct{})
	for _, key := range append([]string{field}, aliases...) {
		found, err := r.Find(ctx, build(key))
		if err != nil {
			return nil, err
		}
		for _, e := range found {
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return fieldValue(out[i], field) < fieldValue(out[j], field)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []domain.LexicalEntry{}
	}
	return out, nil
}

func fieldValue(e domain.LexicalEntry, field string) string {
	switch field {
	case "transliteration":
		return e.Transliteration
	case "meaning":
		return e.Meaning
	}
	return ""
}

// ListByPopularity returns entries ordered by search_count, most viewed first.
// A limit <= 0 returns the whole collection.
func (r *Repo) ListByPopularity(ctx context.Context, limit int) ([]domain.LexicalEntry, error) {
	return r.Find(ctx, domain.Query{OrderBy: "search_count", Desc: true, Limit: limit})
}

// FindBySource returns up to limit entries with the given provenance tag.
func (r *Repo) FindBySource(ctx context.Context, source domain.Source, limit int) ([]domain.LexicalEntry, error) {
	return r.FindEq(ctx, "source", string(source), limit)
}

// Find runs an arbitrary query and decodes the results.
func (r *Repo) Find(ctx context.Context, q domain.Query) ([]domain.LexicalEntry, error) {
	docs, err := r.store.Query(ctx, r.collection, q)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LexicalEntry, 0, len(docs))
	for _, d := range docs {
		e, err := decode(d)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// SaveBatch writes entries in one store call and returns their ids in input
// order. Entries without an id are created; entries with one are replaced.
func (r *Repo) SaveBatch(ctx context.Context, entries []domain.LexicalEntry) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	docs := make([]domain.Document, 0, len(entries))
	for i := range entries {
		body, err := encode(entries[i])
		if err != nil {
			return nil, fmt.Errorf("encode entry %d: %w", i, err)
		}
		docs = append(docs, domain.Document{ID: entries[i].ID, Data: body})
	}
	return r.store.BatchWrite(ctx, r.collection, docs)
}

// IncrementSearchCount bumps the popularity counter of one entry. The
// read and the write are separate store calls, so concurrent views may
// lose an increment.
func (r *Repo) IncrementSearchCount(ctx context.Context, id string) error {
	entry, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	entry.SearchCount++
	_, err = r.SaveBatch(ctx, []domain.LexicalEntry{*entry})
	return err
}

// Delete removes one entry. Deleting a missing entry is not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.collection, id)
}

// Ping checks the underlying store.
func (r *Repo) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// encode stores the entry body without its id; the id is the document key.
func encode(e domain.LexicalEntry) (json.RawMessage, error) {
	body, err := json.Marshal(storedEntry(e))
	if err != nil {
		return nil, err
	}
	return body, nil
}
