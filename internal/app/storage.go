package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dkozTA/thai-dict-web/internal/adapter/postgres"
	"github.com/dkozTA/thai-dict-web/internal/adapter/sqlite"
	"github.com/dkozTA/thai-dict-web/internal/config"
	"github.com/dkozTA/thai-dict-web/internal/domain"
)

// Storage is an opened document store and the connection behind it.
type Storage struct {
	Store   domain.DocumentStore
	Driver  string
	closeFn func()
}

// Close releases the underlying connection pool.
func (s *Storage) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// OpenStorage connects to the configured backend and, when migrate is set,
// applies pending migrations before returning.
func OpenStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, migrate bool) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return &Storage{Store: postgres.NewDocStore(pool), Driver: cfg.Driver, closeFn: pool.Close}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := sqlite.Migrate(ctx, db); err != nil {
				db.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied", slog.String("driver", cfg.Driver))
		}
		return &Storage{
			Store:   sqlite.NewDocStore(db),
			Driver:  cfg.Driver,
			closeFn: func() { db.Close() },
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}
