package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/foorum/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only -d, -l and -g are looked at; os.Args is filtered with
// flagx.FilterArgs so the config-file flags do not trip the parser.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	authDelay := fs.Int("l", int(cfg.AuthDelay.Milliseconds()), "simulated auth delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "g", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.AuthDelay = time.Duration(*authDelay) * time.Millisecond
	return nil
}
