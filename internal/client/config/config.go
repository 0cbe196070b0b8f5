package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the feed client.
//
// Fields:
//   - DatabasePath: SQLite file holding the session and the feed.
//   - AuthDelay: simulated round trip for sign-in and sign-up.
//   - LogLevel: zap level name (debug, info, warn, error).
type Config struct {
	DatabasePath string
	AuthDelay    time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "foorum.db"
	c.AuthDelay = 500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
