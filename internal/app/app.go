package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/transport/middleware"
	"github.com/dkozTA/thai-dict-web/internal/transport/rest"
)

// Run is the HTTP server entry point. It loads configuration, opens the
// store, serves the API and shuts down gracefully when ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("addr", cfg.Server.Addr()),
	)

	storage, err := OpenStorage(ctx, cfg.Database, logger, cfg.Database.AutoMigrate)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	dict := NewDictionary(storage.Store, cfg, logger)
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHTTPHandler(cfg, logger, dict, storage, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewHTTPHandler builds the routed handler with the middleware stack.
// A nil limiter disables rate limiting.
func NewHTTPHandler(
	cfg *config.Config,
	logger *slog.Logger,
	dict *Dictionary,
	storage *Storage,
	limiter *middleware.RateLimiter,
) http.Handler {
	router := rest.NewRouter(
		rest.NewDictionaryHandler(dict.Search, dict.Lexicon, logger),
		rest.NewHealthHandler(storage.Store, storage.Driver, BuildVersion(), logger),
	)

	var rateLimit middleware.Middleware
	if limiter != nil {
		rateLimit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)(router)
}
