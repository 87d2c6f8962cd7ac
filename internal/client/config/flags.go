package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

// parseFlags overlays cfg with the flags this package owns; other flags in
// args are ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-l", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the portfolio API")
	fs.StringVar(&cfg.SessionPath, "s", cfg.SessionPath, "session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	statusCheckInterval := fs.Int("i", int(cfg.StatusCheckInterval.Seconds()), "server status check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.StatusCheckInterval = time.Duration(*statusCheckInterval) * time.Second
}
