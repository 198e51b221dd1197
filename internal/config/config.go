// Package config handles tool configuration and environment loading.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultMaxInputBytes    = 10 << 20 // 10 MiB per input file
	DefaultCheckConcurrency = 8
)

// Config holds the runtime configuration shared by all CLI commands.
type Config struct {
	LogLevel         string // log level: debug, info, warn, error (default "info")
	MaxInputBytes    int64  // upper bound on a single SQL input, 0 disables the check
	CheckConcurrency int    // parallel workers for batch checking
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("SQLFRONT_MAX_INPUT_BYTES must not be negative, got %d", c.MaxInputBytes)
	}
	if c.CheckConcurrency < 1 {
		return fmt.Errorf("SQLFRONT_CHECK_CONCURRENCY must be at least 1, got %d", c.CheckConcurrency)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables, applying
// defaults for anything unset.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:         os.Getenv("SQLFRONT_LOG_LEVEL"),
		MaxInputBytes:    DefaultMaxInputBytes,
		CheckConcurrency: DefaultCheckConcurrency,
	}

	if v := os.Getenv("SQLFRONT_MAX_INPUT_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SQLFRONT_MAX_INPUT_BYTES %q: %w", v, err)
		}
		cfg.MaxInputBytes = n
	}
	if v := os.Getenv("SQLFRONT_CHECK_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SQLFRONT_CHECK_CONCURRENCY %q: %w", v, err)
		}
		cfg.CheckConcurrency = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
