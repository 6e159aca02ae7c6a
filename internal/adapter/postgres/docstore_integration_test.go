//go:build integration

package postgres_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozTA/thai-dict-web/internal/adapter/postgres"
	"github.com/dkozTA/thai-dict-web/internal/adapter/postgres/testhelper"
	"github.com/dkozTA/thai-dict-web/internal/domain"
)

func newStore(t *testing.T) (*postgres.DocStore, string) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return postgres.NewDocStore(pool), testhelper.UniqueCollection("dict")
}

func seed(t *testing.T, store *postgres.DocStore, collection string, bodies ...string) []string {
	t.Helper()
	docs := make([]domain.Document, len(bodies))
	for i, b := range bodies {
		docs[i] = domain.Document{Data: json.RawMessage(b)}
	}
	ids, err := store.BatchWrite(context.Background(), collection, docs)
	require.NoError(t, err)
	return ids
}

func TestIntegration_DocStore_RoundTrip(t *testing.T) {
	store, coll := newStore(t)
	ctx := context.Background()

	ids := seed(t, store, coll, `{"word":"กิน","meaning":"ăn","examples":["nuốt"]}`)
	require.Len(t, ids, 1)

	doc, err := store.Get(ctx, coll, ids[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"word":"กิน","meaning":"ăn","examples":["nuốt"]}`, string(doc.Data))

	_, err = store.Get(ctx, coll, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntegration_DocStore_PrefixRangeIsBytewise(t *testing.T) {
	store, coll := newStore(t)
	ctx := context.Background()

	seed(t, store, coll,
		`{"word":"กินใจ"}`,
		`{"word":"กิน"}`,
		`{"word":"ก"}`,
		`{"word":"ข"}`,
		`{"word":"Kin"}`,
	)

	docs, err := store.Query(ctx, coll, domain.PrefixRange("word", "กิน", 10))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	var first struct{ Word string }
	require.NoError(t, json.Unmarshal(docs[0].Data, &first))
	assert.Equal(t, "กิน", first.Word)

	exact, err := store.Query(ctx, coll, domain.Eq("word", "Kin", 0))
	require.NoError(t, err)
	assert.Len(t, exact, 1)
}

func TestIntegration_DocStore_OrderByNumberDesc(t *testing.T) {
	store, coll := newStore(t)

	seed(t, store, coll,
		`{"word":"a","search_count":2}`,
		`{"word":"b","search_count":10}`,
		`{"word":"c"}`,
	)

	docs, err := store.Query(context.Background(), coll, domain.Query{OrderBy: "search_count", Desc: true, Limit: 2})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	var top struct{ Word string }
	require.NoError(t, json.Unmarshal(docs[0].Data, &top))
	assert.Equal(t, "b", top.Word)
}

func TestIntegration_DocStore_UpsertAndDelete(t *testing.T) {
	store, coll := newStore(t)
	ctx := context.Background()

	ids := seed(t, store, coll, `{"word":"a","search_count":0}`)

	_, err := store.BatchWrite(ctx, coll, []domain.Document{{ID: ids[0], Data: json.RawMessage(`{"word":"a","search_count":1}`)}})
	require.NoError(t, err)

	doc, err := store.Get(ctx, coll, ids[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"word":"a","search_count":1}`, string(doc.Data))

	require.NoError(t, store.Delete(ctx, coll, ids[0]))
	require.NoError(t, store.Delete(ctx, coll, ids[0]))

	_, err = store.Get(ctx, coll, ids[0])
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntegration_DocStore_CollectionsAreIsolated(t *testing.T) {
	store, coll := newStore(t)
	other := testhelper.UniqueCollection("other")

	seed(t, store, coll, `{"word":"a"}`)
	seed(t, store, other, `{"word":"a"}`)

	docs, err := store.Query(context.Background(), coll, domain.Eq("word", "a", 0))
	require.NoError(t, err)
	assert.Len(t, docs, 1)
	require.NoError(t, store.Ping(context.Background()))
}
