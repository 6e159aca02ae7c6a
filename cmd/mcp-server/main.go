// Command mcp-server exposes the dictionary to MCP clients over stdio.
// Configuration is shared with the HTTP server (CONFIG_PATH). Logs go to
// stderr; stdout carries the protocol.
//
// Exit codes: 0 = client disconnected, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dkozTA/thai-dict-web/internal/app"
	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/transport/mcptool"
)

const serverName = "thai-dict"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("mcp server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	storage, err := app.OpenStorage(ctx, cfg.Database, logger, cfg.Database.AutoMigrate)
	if err != nil {
		return err
	}
	defer storage.Close()

	dict := app.NewDictionary(storage.Store, cfg, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: app.BuildVersion(),
	}, &mcp.ServerOptions{
		Instructions: "Use dictionary_search to look up Thai words, phonetic transcriptions or Vietnamese meanings, then dictionary_entry with a returned id for the full entry.",
	})
	mcptool.Register(server, mcptool.NewHandlers(dict.Search, dict.Lexicon, logger))

	logger.Info("mcp server ready",
		slog.String("driver", storage.Driver),
		slog.String("version", app.BuildVersion()),
	)
	return server.Run(ctx, &mcp.StdioTransport{})
}
