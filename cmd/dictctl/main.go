// Command dictctl imports and maintains dictionary data. It shares the
// server configuration (CONFIG_PATH or --config).
//
// Commands:
//
//	import-sheet FILE   import a .xlsx or .csv vocabulary sheet (--dry-run)
//	import-doc FILE     import a .txt or .pdf vocabulary document (--dry-run)
//	clear               delete imported entries (--source or --all)
//	stats               print collection and data quality counts
//	search QUERY        run a search (--limit, --mode)
//	migrate             apply pending schema migrations
//	version             print the build version
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		slog.Error("dictctl failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
