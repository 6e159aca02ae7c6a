package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

const documentsTable = "documents"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type documentRow struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

// DocStore is a domain.DocumentStore over a JSONB documents table.
type DocStore struct {
	db DB
}

// NewDocStore creates a document store on db, usually a *pgxpool.Pool.
func NewDocStore(db DB) *DocStore {
	return &DocStore{db: db}
}

var _ domain.DocumentStore = (*DocStore)(nil)

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Get returns one document or domain.ErrNotFound.
func (s *DocStore) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	sql, args, err := psql.Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var rows []documentRow
	if err := pgxscan.Select(ctx, s.db, &rows, sql, args...); err != nil {
		return nil, mapError(err, collection, id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}

	doc := toDocument(rows[0])
	return &doc, nil
}

// Query returns the documents matching every condition of q. String fields
// compare under the "C" collation, so comparisons are bytewise.
func (s *DocStore) Query(ctx context.Context, collection string, q domain.Query) ([]domain.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	b := psql.Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection})
	for _, c := range q.Where {
		// Field names are validated identifiers; values are bound.
		b = b.Where(fmt.Sprintf(`(data->>'%s') COLLATE "C" %s ?`, c.Field, c.Op.SQL()), c.Value)
	}
	if q.OrderBy != "" {
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		b = b.OrderBy(fmt.Sprintf("data->'%s' %s NULLS LAST", q.OrderBy, dir), "id")
	}
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []documentRow
	if err := pgxscan.Select(ctx, s.db, &rows, sql, args...); err != nil {
		return nil, mapError(err, collection, "")
	}

	docs := make([]domain.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, toDocument(r))
	}
	return docs, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// BatchWrite upserts docs in a single statement and returns their ids in
// input order. Documents without an id get a new UUID.
func (s *DocStore) BatchWrite(ctx context.Context, collection string, docs []domain.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	ids := make([]string, len(docs))
	b := psql.Insert(documentsTable).
		Columns("collection", "id", "data", "created_at", "updated_at")
	for i, d := range docs {
		if !json.Valid(d.Data) {
			return nil, fmt.Errorf("%s: document %d: invalid json: %w", collection, i, domain.ErrValidation)
		}
		ids[i] = d.ID
		if ids[i] == "" {
			ids[i] = uuid.NewString()
		}
		b = b.Values(collection, ids[i], []byte(d.Data), now, now)
	}
	b = b.Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at")

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch write: %w", err)
	}
	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return nil, mapError(err, collection, "")
	}
	return ids, nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *DocStore) Delete(ctx context.Context, collection, id string) error {
	sql, args, err := psql.Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return mapError(err, collection, id)
	}
	return nil
}

// Ping checks the database connection.
func (s *DocStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func toDocument(r documentRow) domain.Document {
	return domain.Document{ID: r.ID, Data: json.RawMessage(r.Data)}
}
