package app

import (
	"log/slog"

	lexiconrepo "github.com/dkozTA/thai-dict-web/internal/adapter/lexicon"
	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/service/lexicon"
	"github.com/dkozTA/thai-dict-web/internal/service/search"
)

// Dictionary bundles the repository and services built over one store.
// The server, the CLI and the MCP server all start from it.
type Dictionary struct {
	Entries *lexiconrepo.Repo
	Search  *search.Service
	Lexicon *lexicon.Service
}

// NewDictionary wires the dictionary services over store.
func NewDictionary(store domain.DocumentStore, cfg *config.Config, logger *slog.Logger) *Dictionary {
	entries := lexiconrepo.New(store, cfg.Dictionary.Collection)
	return &Dictionary{
		Entries: entries,
		Search:  search.NewService(logger, entries, cfg.Search),
		Lexicon: lexicon.NewService(logger, entries, cfg.Search),
	}
}
