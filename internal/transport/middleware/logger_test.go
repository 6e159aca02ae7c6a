package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dkozTA/thai-dict-web/pkg/ctxutil"
)

func runLogged(t *testing.T, handler http.Handler, target string) string {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogger_Success(t *testing.T) {
	out := runLogged(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`)) //nolint:errcheck
	}), "/api/dictionary/search?query=kin")

	for _, want := range []string{
		"http.request",
		`"method":"GET"`,
		`"path":"/api/dictionary/search"`,
		`"query":"query=kin"`,
		`"status":200`,
		`"bytes":11`,
		`"level":"INFO"`,
		"duration",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %s, got %q", want, out)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusNotFound, level: "INFO"},
		{status: http.StatusTooManyRequests, level: "WARN"},
		{status: http.StatusServiceUnavailable, level: "ERROR"},
	}

	for _, tt := range tests {
		out := runLogged(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}), "/x")

		if !strings.Contains(out, `"level":"`+tt.level+`"`) {
			t.Errorf("status %d: expected level %s, got %q", tt.status, tt.level, out)
		}
	}
}

func TestLogger_IncludesRequestIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Chain(RequestID(), Logger(logger))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.RequestIDFromCtx(r.Context()) != "req-abc" {
			t.Error("expected request id in handler context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(RequestIDHeader, "req-abc")
	req.RemoteAddr = "203.0.113.5:4000"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-abc"`) {
		t.Errorf("expected request_id in log, got %q", out)
	}
	if !strings.Contains(out, `"client_ip":"203.0.113.5"`) {
		t.Errorf("expected client_ip in log, got %q", out)
	}
	if strings.Contains(out, `"query"`) {
		t.Errorf("expected no query attribute for empty query, got %q", out)
	}
}
