package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/service/search"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

type searchService interface {
	Search(ctx context.Context, input search.Input) (*search.Result, error)
}

type lexiconService interface {
	GetEntry(ctx context.Context, id string) (*domain.LexicalEntry, error)
	RecordView(ctx context.Context, id string)
	Categories(ctx context.Context) ([]domain.Category, error)
	Popular(ctx context.Context, limit int) ([]domain.LexicalEntry, error)
}

// DictionaryHandler serves the public dictionary endpoints.
type DictionaryHandler struct {
	search  searchService
	lexicon lexiconService
	log     *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(searchSvc searchService, lexiconSvc lexiconService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		search:  searchSvc,
		lexicon: lexiconSvc,
		log:     logger.With("handler", "dictionary"),
	}
}

type entryResponse struct {
	ID               string    `json:"id"`
	Word             string    `json:"word"`
	DisplayWord      string    `json:"display_word"`
	IsTransliterated bool      `json:"is_transliterated"`
	Transliteration  string    `json:"transliteration"`
	Meaning          string    `json:"meaning"`
	Examples         []string  `json:"examples"`
	GrammarNote      string    `json:"grammar_note"`
	Note             string    `json:"note"`
	Category         string    `json:"category"`
	Section          string    `json:"section,omitempty"`
	Source           string    `json:"source"`
	SearchCount      int       `json:"search_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	MatchType        string    `json:"match_type,omitempty"`
	MatchedField     string    `json:"matched_field,omitempty"`
}

type searchResponse struct {
	Success    bool            `json:"success"`
	Items      []entryResponse `json:"items"`
	Count      int             `json:"count"`
	TotalFound int             `json:"total_found"`
	Mode       string          `json:"mode"`
}

type entryEnvelope struct {
	Success bool          `json:"success"`
	Item    entryResponse `json:"item"`
}

type listResponse struct {
	Success bool            `json:"success"`
	Items   []entryResponse `json:"items"`
	Count   int             `json:"count"`
}

type categoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

// Search handles GET /api/dictionary/search?query=&limit=&mode=.
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := q.Get("query")
	if query == "" {
		query = q.Get("q")
	}
	limit, ok := parseLimit(w, q.Get("limit"))
	if !ok {
		return
	}

	res, err := h.search.Search(r.Context(), search.Input{
		Query: query,
		Limit: limit,
		Mode:  domain.SearchMode(strings.ToLower(q.Get("mode"))),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]entryResponse, 0, len(res.Items))
	for _, hit := range res.Items {
		item := toEntryResponse(hit.Entry)
		item.MatchType = hit.MatchType.String()
		item.MatchedField = hit.MatchedField
		items = append(items, item)
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Success:    true,
		Items:      items,
		Count:      len(items),
		TotalFound: res.TotalFound,
		Mode:       res.Mode.String(),
	})
}

// Word handles GET /api/dictionary/word/{id} and records the view.
func (h *DictionaryHandler) Word(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entry, err := h.lexicon.GetEntry(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.lexicon.RecordView(r.Context(), id)

	writeJSON(w, http.StatusOK, entryEnvelope{Success: true, Item: toEntryResponse(*entry)})
}

// Categories handles GET /api/dictionary/categories.
func (h *DictionaryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.lexicon.Categories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.String())
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: out})
}

// Popular handles GET /api/dictionary/popular?limit=.
func (h *DictionaryHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r.URL.Query().Get("limit"))
	if !ok {
		return
	}

	entries, err := h.lexicon.Popular(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, listResponse{Success: true, Items: items, Count: len(items)})
}

// parseLimit reads an optional non-negative limit. An empty value is 0,
// which the services treat as their default.
func parseLimit(w http.ResponseWriter, raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return n, true
}

func toEntryResponse(e domain.LexicalEntry) entryResponse {
	display := textnorm.DisplayWord(e.Word)
	examples := e.Examples
	if examples == nil {
		examples = []string{}
	}
	return entryResponse{
		ID:               e.ID,
		Word:             e.Word,
		DisplayWord:      display.Word,
		IsTransliterated: display.IsTransliterated,
		Transliteration:  e.Transliteration,
		Meaning:          e.Meaning,
		Examples:         examples,
		GrammarNote:      e.GrammarNote,
		Note:             e.Note,
		Category:         e.Category.String(),
		Section:          e.Section,
		Source:           e.Source.String(),
		SearchCount:      e.SearchCount,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
