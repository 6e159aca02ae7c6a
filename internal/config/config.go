package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Import     ImportConfig     `yaml:"import"`
	Search     SearchConfig     `yaml:"search"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds storage connection settings. For the sqlite driver
// DSN is a file path or a modernc.org/sqlite URI; pool settings apply to
// postgres only.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits for the HTTP API.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// DictionaryConfig holds dictionary storage settings.
type DictionaryConfig struct {
	Collection string `yaml:"collection" env:"DICT_COLLECTION" env-default:"dictionary"`
}

// ImportConfig holds import runner limits.
type ImportConfig struct {
	MaxSheetRows       int           `yaml:"max_sheet_rows"       env:"IMPORT_MAX_SHEET_ROWS"       env-default:"1000"`
	MaxDocumentRecords int           `yaml:"max_document_records" env:"IMPORT_MAX_DOCUMENT_RECORDS" env-default:"200"`
	SheetBatchSize     int           `yaml:"sheet_batch_size"     env:"IMPORT_SHEET_BATCH_SIZE"     env-default:"20"`
	DocumentBatchSize  int           `yaml:"document_batch_size"  env:"IMPORT_DOCUMENT_BATCH_SIZE"  env-default:"50"`
	BatchDelay         time.Duration `yaml:"batch_delay"          env:"IMPORT_BATCH_DELAY"          env-default:"200ms"`
	ErrorSamples       int           `yaml:"error_samples"        env:"IMPORT_ERROR_SAMPLES"        env-default:"5"`
	MinLineLength      int           `yaml:"min_line_length"      env:"IMPORT_MIN_LINE_LENGTH"      env-default:"5"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	DefaultLimit int    `yaml:"default_limit" env:"SEARCH_DEFAULT_LIMIT" env-default:"10"`
	MaxLimit     int    `yaml:"max_limit"     env:"SEARCH_MAX_LIMIT"     env-default:"100"`
	DefaultMode  string `yaml:"default_mode"  env:"SEARCH_DEFAULT_MODE"  env-default:"auto"`
}

// SplitList splits a comma-separated setting into trimmed non-empty items.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
