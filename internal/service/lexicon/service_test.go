package lexicon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockEntryRepo struct {
	GetByIDFunc              func(ctx context.Context, id string) (*domain.LexicalEntry, error)
	ListByPopularityFunc     func(ctx context.Context, limit int) ([]domain.LexicalEntry, error)
	FindBySourceFunc         func(ctx context.Context, source domain.Source, limit int) ([]domain.LexicalEntry, error)
	IncrementSearchCountFunc func(ctx context.Context, id string) error
	DeleteFunc               func(ctx context.Context, id string) error
}

func (m *mockEntryRepo) GetByID(ctx context.Context, id string) (*domain.LexicalEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockEntryRepo) ListByPopularity(ctx context.Context, limit int) ([]domain.LexicalEntry, error) {
	if m.ListByPopularityFunc != nil {
		return m.ListByPopularityFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockEntryRepo) FindBySource(ctx context.Context, source domain.Source, limit int) ([]domain.LexicalEntry, error) {
	if m.FindBySourceFunc != nil {
		return m.FindBySourceFunc(ctx, source, limit)
	}
	return nil, nil
}

func (m *mockEntryRepo) IncrementSearchCount(ctx context.Context, id string) error {
	if m.IncrementSearchCountFunc != nil {
		return m.IncrementSearchCountFunc(ctx, id)
	}
	return nil
}

func (m *mockEntryRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// sourceStore keeps entries per source and honours deletes, so paging ends.
type sourceStore struct {
	bySource map[domain.Source][]domain.LexicalEntry
	deleted  []string
}

func newSourceStore(counts map[domain.Source]int) *sourceStore {
	st := &sourceStore{bySource: make(map[domain.Source][]domain.LexicalEntry)}
	for src, n := range counts {
		for i := 0; i < n; i++ {
			st.bySource[src] = append(st.bySource[src], domain.LexicalEntry{
				ID:     fmt.Sprintf("%s-%d", src, i),
				Source: src,
			})
		}
	}
	return st
}

func (st *sourceStore) repo() *mockEntryRepo {
	return &mockEntryRepo{
		FindBySourceFunc: func(_ context.Context, src domain.Source, limit int) ([]domain.LexicalEntry, error) {
			page := st.bySource[src]
			if len(page) > limit {
				page = page[:limit]
			}
			return append([]domain.LexicalEntry(nil), page...), nil
		},
		DeleteFunc: func(_ context.Context, id string) error {
			for src, list := range st.bySource {
				for i, e := range list {
					if e.ID == id {
						st.bySource[src] = append(list[:i], list[i+1:]...)
						st.deleted = append(st.deleted, id)
						return nil
					}
				}
			}
			return nil
		},
	}
}

var testSearchConfig = config.SearchConfig{DefaultLimit: 10, MaxLimit: 100, DefaultMode: "auto"}

func newTestService(repo entryRepo) *Service {
	return newTestServiceWithLog(repo, &bytes.Buffer{})
}

func newTestServiceWithLog(repo entryRepo, buf *bytes.Buffer) *Service {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return NewService(logger, repo, testSearchConfig)
}

// ===========================================================================
// GetEntry / RecordView
// ===========================================================================

func TestService_GetEntry(t *testing.T) {
	repo := &mockEntryRepo{GetByIDFunc: func(_ context.Context, id string) (*domain.LexicalEntry, error) {
		return &domain.LexicalEntry{ID: id, Word: "กิน", Meaning: "ăn"}, nil
	}}
	svc := newTestService(repo)

	got, err := svc.GetEntry(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, domain.CategoryGeneral, got.Category)
	assert.Equal(t, []string{}, got.Examples)
}

func TestService_GetEntry_Errors(t *testing.T) {
	svc := newTestService(&mockEntryRepo{})

	_, err := svc.GetEntry(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GetEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_RecordView_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	var got string
	repo := &mockEntryRepo{IncrementSearchCountFunc: func(_ context.Context, id string) error {
		got = id
		return errors.New("store down")
	}}
	svc := newTestServiceWithLog(repo, &buf)

	svc.RecordView(context.Background(), "e1")

	assert.Equal(t, "e1", got)
	assert.Contains(t, buf.String(), "record view failed")
	assert.Contains(t, buf.String(), "store down")
}

// ===========================================================================
// Categories / Popular
// ===========================================================================

func TestService_Categories(t *testing.T) {
	repo := &mockEntryRepo{ListByPopularityFunc: func(_ context.Context, limit int) ([]domain.LexicalEntry, error) {
		assert.Equal(t, 0, limit)
		return []domain.LexicalEntry{
			{Category: domain.CategoryFood},
			{Category: domain.CategoryAnimals},
			{},
			{Category: domain.CategoryFood},
		}, nil
	}}
	svc := newTestService(repo)

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{domain.CategoryAnimals, domain.CategoryFood, domain.CategoryGeneral}, got)
}

func TestService_Categories_Empty(t *testing.T) {
	svc := newTestService(&mockEntryRepo{})

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_Popular_ClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: 0, want: 10},
		{in: -3, want: 10},
		{in: 7, want: 7},
		{in: 500, want: 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			var got int
			repo := &mockEntryRepo{ListByPopularityFunc: func(_ context.Context, limit int) ([]domain.LexicalEntry, error) {
				got = limit
				return []domain.LexicalEntry{{ID: "a", Word: "w"}}, nil
			}}
			svc := newTestService(repo)

			entries, err := svc.Popular(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "w", entries[0].Transliteration)
		})
	}
}

func TestService_Popular_Error(t *testing.T) {
	cause := errors.New("boom")
	svc := newTestService(&mockEntryRepo{ListByPopularityFunc: func(context.Context, int) ([]domain.LexicalEntry, error) {
		return nil, cause
	}})

	_, err := svc.Popular(context.Background(), 5)
	assert.ErrorIs(t, err, cause)
}

// ===========================================================================
// Clear
// ===========================================================================

func TestService_ClearBySource_Pages(t *testing.T) {
	st := newSourceStore(map[domain.Source]int{
		domain.SourceDocument:    1203,
		domain.SourceSpreadsheet: 4,
	})
	svc := newTestService(st.repo())

	n, err := svc.ClearBySource(context.Background(), domain.SourceDocument)
	require.NoError(t, err)
	assert.Equal(t, 1203, n)
	assert.Empty(t, st.bySource[domain.SourceDocument])
	assert.Len(t, st.bySource[domain.SourceSpreadsheet], 4)
}

func TestService_ClearBySource_UnknownSource(t *testing.T) {
	svc := newTestService(&mockEntryRepo{})

	_, err := svc.ClearBySource(context.Background(), "scraped")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ClearBySource_DeleteError(t *testing.T) {
	st := newSourceStore(map[domain.Source]int{domain.SourceDocument: 3})
	repo := st.repo()
	calls := 0
	repo.DeleteFunc = func(context.Context, string) error {
		calls++
		if calls == 2 {
			return errors.New("write failed")
		}
		return nil
	}
	svc := newTestService(repo)

	n, err := svc.ClearBySource(context.Background(), domain.SourceDocument)
	require.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestService_ClearAll(t *testing.T) {
	st := newSourceStore(map[domain.Source]int{
		domain.SourceDocument:    3,
		domain.SourceSpreadsheet: 2,
		domain.SourceManual:      7,
	})
	svc := newTestService(st.repo())

	n, err := svc.ClearAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Len(t, st.bySource[domain.SourceManual], 7)
}

// ===========================================================================
// Stats
// ===========================================================================

func TestService_Stats(t *testing.T) {
	entries := []domain.LexicalEntry{
		{ID: "1", Word: "a", Transliteration: "A", Meaning: "x", Examples: []string{"e"}, Category: domain.CategoryFood, Source: domain.SourceDocument},
		{ID: "2", Word: "b", Meaning: domain.NoMeaningPlaceholder, Source: domain.SourceSpreadsheet},
		{ID: "3", Word: "c", Transliteration: "C", Meaning: "", Examples: []string{" "}, Source: domain.SourceSpreadsheet},
		{ID: "4", Word: "d", Transliteration: "D", Meaning: "y", Examples: []string{"f"}},
		{ID: "5", Word: "e", Transliteration: "E", Meaning: "z", Examples: []string{"g"}, Category: domain.CategoryFood},
		{ID: "6", Word: "f", Transliteration: "F", Meaning: "w", Examples: []string{"h"}},
	}
	svc := newTestService(&mockEntryRepo{ListByPopularityFunc: func(context.Context, int) ([]domain.LexicalEntry, error) {
		return entries, nil
	}})

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, st.Total)
	assert.Equal(t, map[domain.Category]int{domain.CategoryFood: 2, domain.CategoryGeneral: 4}, st.ByCategory)
	assert.Equal(t, map[domain.Source]int{
		domain.SourceDocument:    1,
		domain.SourceSpreadsheet: 2,
		domain.SourceManual:      3,
	}, st.BySource)
	assert.Equal(t, 2, st.NoMeaning)
	assert.Equal(t, 2, st.NoExamples)
	assert.Equal(t, 1, st.NoTransliteration)
	require.Len(t, st.Samples, 5)
	assert.Equal(t, "1", st.Samples[0].ID)
}
