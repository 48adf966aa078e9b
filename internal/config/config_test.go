package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DIRSIZE_LIMIT", "DIRSIZE_DISK", "DIRSIZE_NEED", "DIRSIZE_ADDR", "DIRSIZE_LOG_LEVEL", "DIRSIZE_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, DefaultDiskSize, cfg.DiskSize)
	assert.Equal(t, DefaultNeeded, cfg.Needed)
	assert.Equal(t, "warn", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DIRSIZE_LIMIT", "42")
	t.Setenv("DIRSIZE_DISK", "not-a-number")
	t.Setenv("DIRSIZE_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, int64(42), cfg.Limit)
	assert.Equal(t, DefaultDiskSize, cfg.DiskSize, "unparsable values fall back")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DIRSIZE_LIMIT", "42")
	cfg := Load()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--limit", "7", "--need", "5"}))

	assert.Equal(t, int64(7), cfg.Limit)
	assert.Equal(t, int64(5), cfg.Needed)
	assert.Equal(t, int64(7), cfg.Thresholds().Limit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"negative limit", func(c *Config) { c.Limit = -1 }, false},
		{"negative disk", func(c *Config) { c.DiskSize = -1 }, false},
		{"negative need", func(c *Config) { c.Needed = -1 }, false},
		{"need exceeds disk", func(c *Config) { c.Needed = c.DiskSize + 1 }, false},
		{"need equals disk", func(c *Config) { c.Needed = c.DiskSize }, true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Limit:     DefaultLimit,
				DiskSize:  DefaultDiskSize,
				Needed:    DefaultNeeded,
				LogFormat: "console",
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
