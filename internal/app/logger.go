package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dkozTA/thai-dict-web/internal/config"
)

// NewLogger builds the process logger on stderr and installs it with
// slog.SetDefault. Stdout stays free for command output and the MCP stdio
// transport.
//
// Format "json" writes JSON lines; any other format writes text with source
// locations. Level is debug, info, warn or error, case-insensitive, and
// defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(cfg, os.Stderr))
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
