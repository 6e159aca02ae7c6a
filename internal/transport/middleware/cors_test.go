package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkozTA/thai-dict-web/internal/config"
)

func TestCORS_Preflight(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   "https://dict.example.com",
		AllowedMethods:   "GET,OPTIONS",
		AllowedHeaders:   "Content-Type,X-Request-Id",
		AllowCredentials: true,
		MaxAge:           86400,
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/dictionary/search", nil)
	req.Header.Set("Origin", "https://dict.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()

	CORS(cfg)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	wantHeaders := map[string]string{
		"Access-Control-Allow-Origin":      "https://dict.example.com",
		"Access-Control-Allow-Methods":     "GET,OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type,X-Request-Id",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "86400",
		"Vary":                             "Origin",
	}
	for k, want := range wantHeaders {
		if got := rec.Header().Get(k); got != want {
			t.Errorf("expected %s %q, got %q", k, want, got)
		}
	}
}

func TestCORS_PlainOptionsPassesThrough(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/dictionary/categories", nil)
	CORS(config.CORSConfig{AllowedOrigins: "*"})(handler).ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("expected handler to be called for OPTIONS without a preflight header")
	}
}

func TestCORS_Origins(t *testing.T) {
	tests := []struct {
		name        string
		allowed     string
		credentials bool
		origin      string
		wantOrigin  string
		wantCreds   string
	}{
		{name: "listed", allowed: "https://a.com, https://b.com", credentials: true, origin: "https://b.com", wantOrigin: "https://b.com", wantCreds: "true"},
		{name: "not listed", allowed: "https://a.com", credentials: true, origin: "https://evil.com"},
		{name: "wildcard", allowed: "*", origin: "https://any.com", wantOrigin: "https://any.com"},
		{name: "no origin", allowed: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})
			cfg := config.CORSConfig{AllowedOrigins: tt.allowed, AllowCredentials: tt.credentials}

			req := httptest.NewRequest(http.MethodGet, "/api/dictionary/search", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(cfg)(handler).ServeHTTP(rec, req)

			if !called {
				t.Error("expected handler to be called")
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("expected Access-Control-Allow-Origin %q, got %q", tt.wantOrigin, got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCreds {
				t.Errorf("expected Access-Control-Allow-Credentials %q, got %q", tt.wantCreds, got)
			}
		})
	}
}
