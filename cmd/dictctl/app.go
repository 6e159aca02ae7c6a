package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dkozTA/thai-dict-web/internal/app"
	"github.com/dkozTA/thai-dict-web/internal/config"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "dictctl",
		Usage: "import and maintain the Thai-Vietnamese dictionary",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "load configuration from `FILE`",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			importSheetCommand,
			importDocCommand,
			clearCommand,
			statsCommand,
			searchCommand,
			migrateCommand,
			versionCommand,
		},
	}
}

// env is what a command needs once configuration is loaded.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	storage *app.Storage
	dict    *app.Dictionary
}

func (e *env) Close() {
	if e.storage != nil {
		e.storage.Close()
	}
}

func loadConfig(c *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

// openEnv loads configuration and opens the store. Migrations run when the
// store is configured with auto_migrate.
func openEnv(c *cli.Context) (*env, error) {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	storage, err := app.OpenStorage(c.Context, cfg.Database, logger, cfg.Database.AutoMigrate)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		storage: storage,
		dict:    app.NewDictionary(storage.Store, cfg, logger),
	}, nil
}

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "print the build version",
	Action: func(c *cli.Context) error {
		_, err := fmt.Fprintln(c.App.Writer, app.BuildVersion())
		return err
	},
}

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "apply pending schema migrations",
	Action: func(c *cli.Context) error {
		cfg, logger, err := loadConfig(c)
		if err != nil {
			return err
		}

		storage, err := app.OpenStorage(c.Context, cfg.Database, logger, true)
		if err != nil {
			return err
		}
		storage.Close()

		fmt.Fprintf(c.App.Writer, "migrations applied (%s)\n", cfg.Database.Driver)
		return nil
	},
}
