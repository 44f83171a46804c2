// Package config loads application configuration from environment variables.
// All variables use the CHEF_ prefix.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	ManifestPath string
	FilesDir     string
	DataDir      string
	Download     DownloadConfig
	Log          LogConfig
}

// DownloadConfig holds settings for the content download pass.
type DownloadConfig struct {
	Enabled bool
	Dir     string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with CHEF_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		ManifestPath: envStr("CHEF_MANIFEST", "assets/channel.yaml"),
		FilesDir:     envStr("CHEF_FILES_DIR", "files"),
		DataDir:      envStr("CHEF_DATA_DIR", "chefdata"),
		Download: DownloadConfig{
			Enabled: envBool("CHEF_DOWNLOAD_ENABLED", false),
			Dir:     envStr("CHEF_DOWNLOAD_DIR", "chefdata/downloads"),
		},
		Log: LogConfig{
			Level:  envStr("CHEF_LOG_LEVEL", "info"),
			Format: envStr("CHEF_LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// LedgerPath returns where the missing-image ledger is written.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.DataDir, "failed_links", "failed_image_links.json")
}

// ChannelPath returns where the rendered channel JSON is written.
func (c *Config) ChannelPath() string {
	return filepath.Join(c.DataDir, "channel.json")
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.ManifestPath == "" {
		return fmt.Errorf("CHEF_MANIFEST is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("CHEF_DATA_DIR is required")
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("CHEF_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}
	return nil
}

// LogLevel maps the configured level name onto a slog level string
// understood by the handler setup in main.
func (c *Config) LogLevel() string {
	return strings.ToLower(c.Log.Level)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
