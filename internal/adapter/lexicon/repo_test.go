package lexicon_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozTA/thai-dict-web/internal/adapter/lexicon"
	"github.com/dkozTA/thai-dict-web/internal/adapter/sqlite"
	"github.com/dkozTA/thai-dict-web/internal/domain"
)

func newTestRepo(t *testing.T) (*lexicon.Repo, *sqlite.DocStore) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))

	store := sqlite.NewDocStore(db)
	return lexicon.New(store, "dictionary"), store
}

func TestRepo_SaveBatchAndGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := []domain.LexicalEntry{
		{
			Word:            "น้ำ",
			Transliteration: "NAM",
			Meaning:         "nước",
			Examples:        []string{"nước: uống nước"},
			GrammarNote:     "dt",
			Category:        domain.CategoryGeneral,
			Source:          domain.SourceSpreadsheet,
			CreatedAt:       created,
			UpdatedAt:       created,
		},
		{Word: "กิน", Meaning: "ăn", Examples: []string{}, Category: domain.CategoryFood, Source: domain.SourceDocument},
	}

	ids, err := repo.SaveBatch(ctx, in)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)

	want := in[0]
	want.ID = ids[0]
	assert.Equal(t, want, *got)
}

func TestRepo_SaveBatch_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	ids, err := repo.SaveBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestRepo_BodyOmitsID(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	ids, err := repo.SaveBatch(ctx, []domain.LexicalEntry{{ID: "fixed", Word: "a", Meaning: "b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"fixed"}, ids)

	doc, err := store.Get(ctx, "dictionary", "fixed")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(doc.Data, &body))
	assert.NotContains(t, body, "id")
	assert.Equal(t, "a", body["word"])
}

func TestRepo_DecodesLegacyFields(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	_, err := store.BatchWrite(ctx, "dictionary", []domain.Document{
		{ID: "old1", Data: json.RawMessage(`{"word":"ม้า","phonetic":"MA","vietnamese_meaning":"con ngựa","examples":"ngựa trắng\n\n  ngựa đen  \n"}`)},
		{ID: "old2", Data: json.RawMessage(`{"word":"ควาย","word_transliterated":"khuai","meaning":"con trâu","search_count":3}`)},
	})
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, "old1")
	require.NoError(t, err)
	assert.Equal(t, "MA", first.Transliteration)
	assert.Equal(t, "con ngựa", first.Meaning)
	assert.Equal(t, []string{"ngựa trắng", "ngựa đen"}, first.Examples)

	second, err := repo.GetByID(ctx, "old2")
	require.NoError(t, err)
	assert.Equal(t, "khuai", second.Transliteration)
	assert.Nil(t, second.Examples)
	assert.Equal(t, 3, second.SearchCount)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_FindPrefixAndEq(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.SaveBatch(ctx, []domain.LexicalEntry{
		{Word: "กินใจ", Transliteration: "kinjai", Meaning: "touching, moving (emotion)"},
		{Word: "กิน", Transliteration: "kin", Meaning: "to eat, to consume"},
		{Word: "น้ำ", Transliteration: "NAM", Meaning: "nước"},
	})
	require.NoError(t, err)

	prefix, err := repo.FindPrefix(ctx, "word", "กิน", 10)
	require.NoError(t, err)
	require.Len(t, prefix, 2)
	assert.Equal(t, "กิน", prefix[0].Word)
	assert.Equal(t, "กินใจ", prefix[1].Word)

	exact, err := repo.FindEq(ctx, "transliteration", "kin", 10)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "กิน", exact[0].Word)
}

func TestRepo_FindMatchesLegacyAliases(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	_, err := store.BatchWrite(ctx, "dictionary", []domain.Document{
		{ID: "legacy1", Data: json.RawMessage(`{"word":"กิน","phonetic":"KIN","vietnamese_meaning":"ăn"}`)},
		{ID: "legacy2", Data: json.RawMessage(`{"word":"กินข้าว","word_transliterated":"KINKHAO","meaning":"ăn cơm"}`)},
	})
	require.NoError(t, err)
	_, err = repo.SaveBatch(ctx, []domain.LexicalEntry{
		{ID: "new1", Word: "กินใจ", Transliteration: "KINJAI", Meaning: "cảm động"},
	})
	require.NoError(t, err)

	exact, err := repo.FindEq(ctx, "transliteration", "KIN", 10)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "legacy1", exact[0].ID)

	prefix, err := repo.FindPrefix(ctx, "transliteration", "KIN", 10)
	require.NoError(t, err)
	var got []string
	for _, e := range prefix {
		got = append(got, e.Transliteration)
	}
	assert.Equal(t, []string{"KIN", "KINJAI", "KINKHAO"}, got)

	limited, err := repo.FindPrefix(ctx, "transliteration", "KIN", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	meaning, err := repo.FindEq(ctx, "meaning", "ăn", 10)
	require.NoError(t, err)
	require.Len(t, meaning, 1)
	assert.Equal(t, "legacy1", meaning[0].ID)
}

func TestRepo_IncrementSearchCountAndPopularity(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	ids, err := repo.SaveBatch(ctx, []domain.LexicalEntry{
		{Word: "a", Meaning: "x"},
		{Word: "b", Meaning: "y"},
	})
	require.NoError(t, err)

	require.NoError(t, repo.IncrementSearchCount(ctx, ids[1]))
	require.NoError(t, repo.IncrementSearchCount(ctx, ids[1]))

	popular, err := repo.ListByPopularity(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, "b", popular[0].Word)
	assert.Equal(t, 2, popular[0].SearchCount)

	assert.ErrorIs(t, repo.IncrementSearchCount(ctx, "missing"), domain.ErrNotFound)
}

func TestRepo_FindBySourceAndDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	ids, err := repo.SaveBatch(ctx, []domain.LexicalEntry{
		{Word: "a", Meaning: "x", Source: domain.SourceDocument},
		{Word: "b", Meaning: "y", Source: domain.SourceSpreadsheet},
		{Word: "c", Meaning: "z", Source: domain.SourceDocument},
	})
	require.NoError(t, err)

	docs, err := repo.FindBySource(ctx, domain.SourceDocument, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	require.NoError(t, repo.Delete(ctx, ids[0]))
	docs, err = repo.FindBySource(ctx, domain.SourceDocument, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "c", docs[0].Word)

	require.NoError(t, repo.Ping(ctx))
	assert.Equal(t, "dictionary", repo.Collection())
}
