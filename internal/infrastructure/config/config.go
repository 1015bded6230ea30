package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for Gray Logic Sentry.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SiteConfig contains site-specific information.
type SiteConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

// DatabaseConfig contains SQLite database settings.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// StorageConfig contains blob-store key layout settings.
//
// Keys are explicit configuration rather than package constants so stores
// carry no implicit process-wide state and tests can pick their own keys.
type StorageConfig struct {
	// ScenariosKey is the blob key the saved-scenario list lives under.
	ScenariosKey string `yaml:"scenarios_key"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: SENTRY_SECTION_KEY
// For example: SENTRY_DATABASE_PATH, SENTRY_LOGGING_LEVEL
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			ID:       "site-001",
			Name:     "Gray Logic Sentry",
			Timezone: "UTC",
		},
		Database: DatabaseConfig{
			Path:        "./data/sentry.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Storage: StorageConfig{
			ScenariosKey: "sentry.scenarios",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: SENTRY_SECTION_KEY and cover
// every key of every section. Unparsable bool or int values are an error
// rather than a silent fall-through to the file value.
func applyEnvOverrides(cfg *Config) error {
	// Site
	if v := os.Getenv("SENTRY_SITE_ID"); v != "" {
		cfg.Site.ID = v
	}
	if v := os.Getenv("SENTRY_SITE_NAME"); v != "" {
		cfg.Site.Name = v
	}
	if v := os.Getenv("SENTRY_SITE_TIMEZONE"); v != "" {
		cfg.Site.Timezone = v
	}

	// Database
	if v := os.Getenv("SENTRY_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SENTRY_DATABASE_WAL_MODE"); v != "" {
		walMode, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SENTRY_DATABASE_WAL_MODE: %w", err)
		}
		cfg.Database.WALMode = walMode
	}
	if v := os.Getenv("SENTRY_DATABASE_BUSY_TIMEOUT"); v != "" {
		timeout, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SENTRY_DATABASE_BUSY_TIMEOUT: %w", err)
		}
		cfg.Database.BusyTimeout = timeout
	}

	// Storage
	if v := os.Getenv("SENTRY_STORAGE_SCENARIOS_KEY"); v != "" {
		cfg.Storage.ScenariosKey = v
	}

	// Logging
	if v := os.Getenv("SENTRY_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SENTRY_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SENTRY_LOGGING_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}

	return nil
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Site validation
	if c.Site.ID == "" {
		errs = append(errs, "site.id is required")
	}

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, "database.path is required")
	}
	if c.Database.BusyTimeout < 0 {
		errs = append(errs, "database.busy_timeout must not be negative")
	}

	// Storage validation
	if strings.TrimSpace(c.Storage.ScenariosKey) == "" {
		errs = append(errs, "storage.scenarios_key is required")
	}

	// Logging validation
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, "logging.level must be one of: debug, info, warn, error")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
