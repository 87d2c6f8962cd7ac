package config

import "time"

// Config holds runtime settings of the admin CLI.
type Config struct {
	// BaseURL is the API root, including any path prefix.
	BaseURL string
	// SessionPath is the SQLite file holding the saved session;
	// ":memory:" keeps the session for the lifetime of the process only.
	SessionPath string
	LogLevel    string
	// StatusCheckInterval bounds how often the prompt pings the server.
	StatusCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/api"
	c.SessionPath = "session.db"
	c.LogLevel = "warn"
	c.StatusCheckInterval = 3 * time.Second
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// flags. args excludes the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
