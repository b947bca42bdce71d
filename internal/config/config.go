package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/parser"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/source"
)

// DefaultSourceURL is the published family sheet.
const DefaultSourceURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRzh-QghHQOBSVi1bR7Bm_DXECJ3qaOctaxQOgwINm5G7EQNP6pgTydjwv8JdNurOaKJGoi4G2gXKOC/pub?output=csv"

// Config represents the complete application configuration
type Config struct {
	Source SourceConfig
	Parse  ParseConfig
	Server ServerConfig
	Log    LogConfig
}

// SourceConfig holds sheet retrieval settings
type SourceConfig struct {
	Location     string
	Format       source.Format
	FetchTimeout time.Duration
	MaxBodyBytes int64
}

// ParseConfig holds sheet parsing settings
type ParseConfig struct {
	Boundary   parser.Boundary
	Duplicates parser.DuplicatePolicy
	Sheet      string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr            string
	RefreshInterval time.Duration
	Watch           bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from environment variables and validates it
func FromEnv() (*Config, error) {
	format, err := source.ParseFormat(os.Getenv("SILSILAH_FORMAT"))
	if err != nil {
		return nil, fmt.Errorf("SILSILAH_FORMAT: %w", err)
	}
	boundary, err := parser.ParseBoundary(os.Getenv("SILSILAH_BOUNDARY"))
	if err != nil {
		return nil, fmt.Errorf("SILSILAH_BOUNDARY: %w", err)
	}
	duplicates, err := parser.ParseDuplicatePolicy(os.Getenv("SILSILAH_DUPLICATES"))
	if err != nil {
		return nil, fmt.Errorf("SILSILAH_DUPLICATES: %w", err)
	}

	cfg := &Config{
		Source: SourceConfig{
			Location:     getEnvOrDefault("SILSILAH_SOURCE", DefaultSourceURL),
			Format:       format,
			FetchTimeout: getEnvDurationOrDefault("SILSILAH_FETCH_TIMEOUT", 15*time.Second),
			MaxBodyBytes: getEnvInt64OrDefault("SILSILAH_MAX_BODY_BYTES", source.DefaultMaxBytes),
		},
		Parse: ParseConfig{
			Boundary:   boundary,
			Duplicates: duplicates,
			Sheet:      getEnvOrDefault("SILSILAH_SHEET", ""),
		},
		Server: ServerConfig{
			Addr:            getEnvOrDefault("SILSILAH_ADDR", ":8080"),
			RefreshInterval: getEnvDurationOrDefault("SILSILAH_REFRESH_INTERVAL", 0),
			Watch:           getEnvBoolOrDefault("SILSILAH_WATCH", false),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and ranges
func (c *Config) Validate() error {
	if c.Source.Location == "" {
		return fmt.Errorf("source location is required")
	}
	if c.Source.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout must not be negative")
	}
	if c.Source.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}
	if c.Server.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval must not be negative")
	}
	return nil
}

// SourceOptions returns the options for opening the configured source.
func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Timeout:  c.Source.FetchTimeout,
		MaxBytes: c.Source.MaxBodyBytes,
		Format:   c.Source.Format,
	}
}

// ParseOptions returns the configured parser options.
func (c *Config) ParseOptions() parser.Options {
	return parser.Options{
		Boundary:   c.Parse.Boundary,
		Duplicates: c.Parse.Duplicates,
		Sheet:      c.Parse.Sheet,
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
