// Package mcptool exposes the dictionary to MCP clients as three tools:
// dictionary_search, dictionary_entry and dictionary_categories.
// Handlers parse the tool arguments and delegate to the search and lexicon services.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/service/search"
	"github.com/dkozTA/thai-dict-web/internal/textnorm"
)

type searchService interface {
	Search(ctx context.Context, input search.Input) (*search.Result, error)
}

type lexiconService interface {
	GetEntry(ctx context.Context, id string) (*domain.LexicalEntry, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// SearchArgs defines the arguments for the dictionary_search tool.
type SearchArgs struct {
	Query string `json:"query" jsonschema_description:"Thai word, transliteration or Vietnamese meaning to look up"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of entries to return; when omitted the server's configured search.default_limit applies (10 unless configured)"`
	Mode  string `json:"mode,omitempty" jsonschema_description:"One of all, word, phonetic, meaning, auto (default auto)"`
}

// EntryArgs defines the arguments for the dictionary_entry tool.
type EntryArgs struct {
	ID string `json:"id" jsonschema_description:"Entry id returned by dictionary_search"`
}

// CategoriesArgs is empty; dictionary_categories takes no arguments.
type CategoriesArgs struct{}

// Handlers holds the services behind the MCP tools.
type Handlers struct {
	search  searchService
	lexicon lexiconService
	logger  *slog.Logger
}

// NewHandlers creates handlers over the given services.
func NewHandlers(searchSvc searchService, lexiconSvc lexiconService, logger *slog.Logger) *Handlers {
	return &Handlers{search: searchSvc, lexicon: lexiconSvc, logger: logger.With("component", "mcp")}
}

// Register adds every dictionary tool to server.
func Register(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "dictionary_search",
		Description: "Search the Thai-Vietnamese dictionary by Thai word, phonetic transcription or Vietnamese meaning. Returns ranked entries as JSON.",
	}, h.Search)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dictionary_entry",
		Description: "Fetch one dictionary entry by id with its examples, grammar note and category.",
	}, h.Entry)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dictionary_categories",
		Description: "List the categories present in the dictionary.",
	}, h.Categories)
}

type toolEntry struct {
	ID              string   `json:"id"`
	Word            string   `json:"word"`
	DisplayWord     string   `json:"display_word"`
	Transliteration string   `json:"transliteration,omitempty"`
	Meaning         string   `json:"meaning"`
	Examples        []string `json:"examples,omitempty"`
	GrammarNote     string   `json:"grammar_note,omitempty"`
	Note            string   `json:"note,omitempty"`
	Category        string   `json:"category"`
	Section         string   `json:"section,omitempty"`
	MatchType       string   `json:"match_type,omitempty"`
}

type searchPayload struct {
	Query      string      `json:"query"`
	Mode       string      `json:"mode"`
	TotalFound int         `json:"total_found"`
	Items      []toolEntry `json:"items"`
}

// Search handles the dictionary_search tool call.
func (h *Handlers) Search(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Query) == "" {
		h.logger.Error("dictionary_search: query is required")
		return nil, nil, fmt.Errorf("query is required")
	}

	res, err := h.search.Search(ctx, search.Input{
		Query: args.Query,
		Limit: args.Limit,
		Mode:  domain.SearchMode(strings.ToLower(args.Mode)),
	})
	if err != nil {
		h.logger.Error("dictionary_search: failed", "query", args.Query, "error", err)
		return nil, nil, err
	}

	items := make([]toolEntry, 0, len(res.Items))
	for _, hit := range res.Items {
		item := toToolEntry(hit.Entry)
		item.MatchType = hit.MatchType.String()
		items = append(items, item)
	}

	h.logger.Debug("dictionary_search: success", "query", args.Query, "count", len(items), "total", res.TotalFound)

	return textResult(searchPayload{
		Query:      args.Query,
		Mode:       res.Mode.String(),
		TotalFound: res.TotalFound,
		Items:      items,
	})
}

// Entry handles the dictionary_entry tool call. Views through MCP are not counted.
func (h *Handlers) Entry(ctx context.Context, req *mcp.CallToolRequest, args EntryArgs) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.ID) == "" {
		h.logger.Error("dictionary_entry: id is required")
		return nil, nil, fmt.Errorf("id is required")
	}

	entry, err := h.lexicon.GetEntry(ctx, args.ID)
	if err != nil {
		h.logger.Error("dictionary_entry: failed", "id", args.ID, "error", err)
		return nil, nil, err
	}
	return textResult(toToolEntry(*entry))
}

// Categories handles the dictionary_categories tool call.
func (h *Handlers) Categories(ctx context.Context, req *mcp.CallToolRequest, args CategoriesArgs) (*mcp.CallToolResult, any, error) {
	cats, err := h.lexicon.Categories(ctx)
	if err != nil {
		h.logger.Error("dictionary_categories: failed", "error", err)
		return nil, nil, err
	}

	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.String())
	}
	return textResult(map[string][]string{"categories": out})
}

func toToolEntry(e domain.LexicalEntry) toolEntry {
	return toolEntry{
		ID:              e.ID,
		Word:            e.Word,
		DisplayWord:     textnorm.DisplayWord(e.Word).Word,
		Transliteration: e.Transliteration,
		Meaning:         e.Meaning,
		Examples:        e.Examples,
		GrammarNote:     e.GrammarNote,
		Note:            e.Note,
		Category:        e.Category.String(),
		Section:         e.Section,
	}
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}, nil, nil
}
