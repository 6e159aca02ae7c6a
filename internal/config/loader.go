package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is read when no path is given. A missing default file is not an
// error; the HTTP server and the MCP server then run from ENV alone.
const defaultPath = "./config.yaml"

// Load is used by the HTTP and MCP servers. The file comes from CONFIG_PATH
// and ENV values override it.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile backs dictctl --config. A path that was named explicitly must
// exist. Surrounding whitespace in the path is ignored.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	path = strings.TrimSpace(path)
	explicitPath := path != ""
	if !explicitPath {
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
