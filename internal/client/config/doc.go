// Package config loads runtime configuration for the feed client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config, or $FOORUM_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-l int      simulated auth delay (milliseconds)
//	-g string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "500ms" or
// integer nanoseconds. Keys that are absent keep their earlier value:
//
//	{
//	  "database_path": "foorum.db",
//	  "auth_delay": "500ms",
//	  "log_level": "info"
//	}
package config
