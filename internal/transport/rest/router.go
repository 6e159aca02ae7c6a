package rest

import "net/http"

// NewRouter registers the dictionary and health endpoints.
func NewRouter(dict *DictionaryHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/dictionary/search", dict.Search)
	mux.HandleFunc("GET /api/dictionary/word/{id}", dict.Word)
	mux.HandleFunc("GET /api/dictionary/categories", dict.Categories)
	mux.HandleFunc("GET /api/dictionary/popular", dict.Popular)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /api/health", health.Health)

	return mux
}
