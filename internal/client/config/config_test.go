package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", c.BaseURL)
	assert.Equal(t, "session.db", c.SessionPath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 3*time.Second, c.StatusCheckInterval)
}

func TestLoadConfig_NoArgs(t *testing.T) {
	cfg := LoadConfig(nil)

	var want Config
	want.LoadDefaults()
	require.NotNil(t, cfg)
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"https://json.example/api","session_path":"json.db","status_check_interval":"7s"}`), 0o600))

	cfg := LoadConfig([]string{"-c", path, "-a", "https://flag.example/api", "-unknown", "x"})

	assert.Empty(t, cmp.Diff(&Config{
		BaseURL:             "https://flag.example/api",
		SessionPath:         "json.db",
		LogLevel:            "warn",
		StatusCheckInterval: 7 * time.Second,
	}, cfg))
}
