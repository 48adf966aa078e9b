// Package config holds run settings, taken from flags with environment fallbacks.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"dirsize/internal/model"
)

// Defaults used by the puzzle this tool was written for.
const (
	DefaultLimit    int64 = 100000
	DefaultDiskSize int64 = 70000000
	DefaultNeeded   int64 = 30000000
)

// Config holds everything a run needs besides the transcript itself.
type Config struct {
	// Queries
	Limit    int64
	DiskSize int64
	Needed   int64

	// Web mode
	Addr string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Limit:     envInt64("DIRSIZE_LIMIT", DefaultLimit),
		DiskSize:  envInt64("DIRSIZE_DISK", DefaultDiskSize),
		Needed:    envInt64("DIRSIZE_NEED", DefaultNeeded),
		Addr:      envOr("DIRSIZE_ADDR", "localhost:8080"),
		LogLevel:  envOr("DIRSIZE_LOG_LEVEL", "warn"),
		LogFormat: envOr("DIRSIZE_LOG_FORMAT", "console"),
	}
}

// BindFlags registers the config fields on fs. Current values become the
// flag defaults, so call it after Load to let flags override the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&c.Limit, "limit", c.Limit, "Directories smaller than this are summed")
	fs.Int64Var(&c.DiskSize, "disk", c.DiskSize, "Total capacity of the device")
	fs.Int64Var(&c.Needed, "need", c.Needed, "Free space required")
	fs.StringVar(&c.Addr, "addr", c.Addr, "Listen address for --web")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: console or json")
}

// Validate rejects thresholds that cannot describe a real device.
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.DiskSize < 0 {
		return fmt.Errorf("disk size must not be negative, got %d", c.DiskSize)
	}
	if c.Needed < 0 {
		return fmt.Errorf("needed space must not be negative, got %d", c.Needed)
	}
	if c.Needed > c.DiskSize {
		return fmt.Errorf("needed space %d exceeds disk size %d", c.Needed, c.DiskSize)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Thresholds returns the query parameters for an analysis.
func (c *Config) Thresholds() model.Thresholds {
	return model.Thresholds{
		Limit:    c.Limit,
		DiskSize: c.DiskSize,
		Needed:   c.Needed,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return i
}
