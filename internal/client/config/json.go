package config

import (
	"os"

	"github.com/dmitrijs2005/foorum/internal/flagx"
	"github.com/dmitrijs2005/foorum/internal/timex"
	"github.com/goccy/go-json"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key apart from an explicit zero.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	AuthDelay    *timex.Duration `json:"auth_delay"`
	LogLevel     *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by flagx.ConfigPath.
// No path means nothing to do.
func parseJson(cfg *Config) error {
	path := flagx.ConfigPath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.AuthDelay != nil {
		cfg.AuthDelay = jc.AuthDelay.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
