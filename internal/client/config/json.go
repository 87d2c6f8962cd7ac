package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
	"github.com/dmitrijs2005/portfolio/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Intervals accept "3s"
// or integer nanoseconds.
type JsonConfig struct {
	BaseURL             string          `json:"base_url"`
	SessionPath         string          `json:"session_path"`
	LogLevel            string          `json:"log_level"`
	StatusCheckInterval *timex.Duration `json:"status_check_interval"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Keys
// missing from the file keep their current value. Read and decode errors
// panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JSONConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SessionPath != "" {
		cfg.SessionPath = jc.SessionPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.StatusCheckInterval != nil {
		cfg.StatusCheckInterval = jc.StatusCheckInterval.Duration
	}
}
