// Package config loads runtime settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Level sources understood by the game.
var levelSources = []string{"example", "generated"}

// Config holds all runtime configuration.
type Config struct {
	Environment string          `yaml:"environment"`
	LogLevel    string          `yaml:"log_level"`
	LogFile     string          `yaml:"log_file"`
	Seed        int64           `yaml:"seed"`
	Level       string          `yaml:"level"`
	TickMS      int             `yaml:"tick_ms"`
	Telemetry   bool            `yaml:"telemetry"`
	Honeycomb   HoneycombConfig `yaml:"honeycomb"`
}

// HoneycombConfig holds the trace export credentials.
type HoneycombConfig struct {
	APIKey  string `yaml:"api_key"`
	Dataset string `yaml:"dataset"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		LogFile:     "blackbox.log",
		Level:       "example",
		TickMS:      16,
		Telemetry:   true,
		Honeycomb: HoneycombConfig{
			Dataset: "blackbox",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// BLACKBOX_CONFIG if set, then environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("BLACKBOX_CONFIG"); path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from a YAML file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Environment = getEnv("BLACKBOX_ENV", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("BLACKBOX_LOG_FILE", c.LogFile)
	c.Level = getEnv("BLACKBOX_LEVEL", c.Level)
	c.Honeycomb.APIKey = getEnv("HONEYCOMB_BLACKBOX_API_KEY", c.Honeycomb.APIKey)
	c.Honeycomb.Dataset = getEnv("HONEYCOMB_BLACKBOX_DATASET", c.Honeycomb.Dataset)

	var errs []error
	if v := os.Getenv("BLACKBOX_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("BLACKBOX_SEED: %w", err))
		}
		c.Seed = seed
	}
	if v := os.Getenv("BLACKBOX_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("BLACKBOX_TICK_MS: %w", err))
		}
		c.TickMS = ms
	}
	if v := os.Getenv("BLACKBOX_TELEMETRY"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("BLACKBOX_TELEMETRY: %w", err))
		}
		c.Telemetry = on
	}
	return errors.Join(errs...)
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if !slices.Contains(levelSources, c.Level) {
		return fmt.Errorf("unknown level source %q (want one of %s)", c.Level, strings.Join(levelSources, ", "))
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("tick rate must be positive, got %dms", c.TickMS)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	return parseLogLevel(c.LogLevel)
}

// TickInterval returns the animation tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// IsProduction reports whether logs should be machine-readable.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
