package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
)

// PrefixRangeEnd is appended to a prefix to form the upper bound of a
// lexical range query: [p, p+PrefixRangeEnd] covers every string starting with p.
const PrefixRangeEnd = "\uf8ff"

// Document is a stored JSON body addressed by collection and id.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Op is a comparison operator supported by document queries.
type Op string

const (
	OpEq  Op = "=="
	OpGte Op = ">="
	OpLte Op = "<="
)

// SQL returns the SQL spelling of the operator.
func (o Op) SQL() string {
	if o == OpEq {
		return "="
	}
	return string(o)
}

func (o Op) IsValid() bool {
	switch o {
	case OpEq, OpGte, OpLte:
		return true
	}
	return false
}

// Condition compares one top-level string field of the document body.
type Condition struct {
	Field string
	Op    Op
	Value string
}

// Query selects documents of a collection. Conditions are ANDed.
// Limit <= 0 means no limit. OrderBy is optional.
type Query struct {
	Where   []Condition
	OrderBy string
	Desc    bool
	Limit   int
}

// Eq builds a single equality query.
func Eq(field, value string, limit int) Query {
	return Query{
		Where: []Condition{{Field: field, Op: OpEq, Value: value}},
		Limit: limit,
	}
}

// PrefixRange builds a range query over every value of field starting with prefix,
// ordered by that field.
func PrefixRange(field, prefix string, limit int) Query {
	return Query{
		Where: []Condition{
			{Field: field, Op: OpGte, Value: prefix},
			{Field: field, Op: OpLte, Value: prefix + PrefixRangeEnd},
		},
		OrderBy: field,
		Limit:   limit,
	}
}

var fieldNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate checks field names and operators. Field names are interpolated into
// SQL by the adapters, so only plain identifiers are accepted.
func (q Query) Validate() error {
	for _, c := range q.Where {
		if !fieldNameRe.MatchString(c.Field) {
			return fmt.Errorf("query: invalid field %q: %w", c.Field, ErrValidation)
		}
		if !c.Op.IsValid() {
			return fmt.Errorf("query: invalid operator %q: %w", c.Op, ErrValidation)
		}
	}
	if q.OrderBy != "" && !fieldNameRe.MatchString(q.OrderBy) {
		return fmt.Errorf("query: invalid order field %q: %w", q.OrderBy, ErrValidation)
	}
	return nil
}

// DocumentStore is the storage contract shared by the postgres and sqlite adapters.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
	BatchWrite(ctx context.Context, collection string, docs []Document) ([]string, error)
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}
