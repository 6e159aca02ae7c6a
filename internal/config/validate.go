package config

import (
	"fmt"
	"slices"
	"strings"
)

var searchModes = []string{"all", "word", "phonetic", "meaning", "auto"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit: requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if strings.TrimSpace(c.Dictionary.Collection) == "" {
		return fmt.Errorf("dictionary: collection is required")
	}
	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", d.Driver, DriverPostgres, DriverSQLite)
	}
	if d.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.Driver == DriverPostgres && d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must be <= max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (i *ImportConfig) validate() error {
	if i.MaxSheetRows <= 0 {
		return fmt.Errorf("max_sheet_rows must be > 0 (got %d)", i.MaxSheetRows)
	}
	if i.MaxDocumentRecords <= 0 {
		return fmt.Errorf("max_document_records must be > 0 (got %d)", i.MaxDocumentRecords)
	}
	if i.SheetBatchSize <= 0 {
		return fmt.Errorf("sheet_batch_size must be > 0 (got %d)", i.SheetBatchSize)
	}
	if i.DocumentBatchSize <= 0 {
		return fmt.Errorf("document_batch_size must be > 0 (got %d)", i.DocumentBatchSize)
	}
	if i.BatchDelay < 0 {
		return fmt.Errorf("batch_delay must be >= 0 (got %v)", i.BatchDelay)
	}
	if i.ErrorSamples < 0 {
		return fmt.Errorf("error_samples must be >= 0 (got %d)", i.ErrorSamples)
	}
	if i.MinLineLength <= 0 {
		return fmt.Errorf("min_line_length must be > 0 (got %d)", i.MinLineLength)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if s.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", s.DefaultLimit)
	}
	if s.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", s.MaxLimit)
	}
	if s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("default_limit (%d) must be <= max_limit (%d)", s.DefaultLimit, s.MaxLimit)
	}
	if !slices.Contains(searchModes, s.DefaultMode) {
		return fmt.Errorf("unknown default_mode %q", s.DefaultMode)
	}
	return nil
}
