package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/dkozTA/thai-dict-web/internal/domain"
)

const documentsTable = "documents"

type documentRow struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

// DocStore is a domain.DocumentStore over a JSON text documents table.
// Text comparisons use SQLite's default BINARY collation.
type DocStore struct {
	db *sql.DB
}

// NewDocStore creates a document store on an opened and migrated database.
func NewDocStore(db *sql.DB) *DocStore {
	return &DocStore{db: db}
}

var _ domain.DocumentStore = (*DocStore)(nil)

// Get returns one document or domain.ErrNotFound.
func (s *DocStore) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	query, args, err := squirrel.Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var rows []documentRow
	if err := sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
		return nil, mapError(err, collection, id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	return &domain.Document{ID: rows[0].ID, Data: json.RawMessage(rows[0].Data)}, nil
}

// Query returns the documents matching every condition of q.
func (s *DocStore) Query(ctx context.Context, collection string, q domain.Query) ([]domain.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	b := squirrel.Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection})
	for _, c := range q.Where {
		b = b.Where(fmt.Sprintf("json_extract(data, '$.%s') %s ?", c.Field, c.Op.SQL()), c.Value)
	}
	if q.OrderBy != "" {
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		// NULLs sort first in SQLite ascending order; keep them last like postgres.
		field := fmt.Sprintf("json_extract(data, '$.%s')", q.OrderBy)
		b = b.OrderBy(field+" IS NULL", field+" "+dir, "id")
	}
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []documentRow
	if err := sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
		return nil, mapError(err, collection, "")
	}

	docs := make([]domain.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, domain.Document{ID: r.ID, Data: json.RawMessage(r.Data)})
	}
	return docs, nil
}

// BatchWrite upserts docs in a single statement and returns their ids in
// input order. Documents without an id get a new UUID.
func (s *DocStore) BatchWrite(ctx context.Context, collection string, docs []domain.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	ids := make([]string, len(docs))
	b := squirrel.Insert(documentsTable).
		Columns("collection", "id", "data", "created_at", "updated_at")
	for i, d := range docs {
		if !json.Valid(d.Data) {
			return nil, fmt.Errorf("%s: document %d: invalid json: %w", collection, i, domain.ErrValidation)
		}
		ids[i] = d.ID
		if ids[i] == "" {
			ids[i] = uuid.NewString()
		}
		b = b.Values(collection, ids[i], string(d.Data), now, now)
	}
	b = b.Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at")

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch write: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, mapError(err, collection, "")
	}
	return ids, nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *DocStore) Delete(ctx context.Context, collection, id string) error {
	query, args, err := squirrel.Delete(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, collection, id)
	}
	return nil
}

// Ping checks the database connection.
func (s *DocStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func mapError(err error, collection, id string) error {
	ref := collection
	if id != "" {
		ref += "/" + id
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", ref, err)
}
