package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "15",
				"-u", "root", "-p", "pw", "-o", "https://a.example, https://b.example", "-l", "30",
				"-b", "bucket", "-g", "eu-west-1", "-e", "http://s3", "-k", "key", "-w", "skey", "-m", "https://cdn",
			},
			expected: &Config{
				ListenAddr:                  "127.0.0.1:9090",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 15 * time.Minute,
				AdminUser:                   "root",
				AdminPassword:               "pw",
				CORSOrigins:                 []string{"https://a.example", "https://b.example"},
				CacheTTL:                    30 * time.Second,
				S3Bucket:                    "bucket",
				S3Region:                    "eu-west-1",
				S3BaseEndpoint:              "http://s3",
				S3AccessKey:                 "key",
				S3SecretKey:                 "skey",
				S3PublicURL:                 "https://cdn",
			},
		},
		{
			name: "empty dsn selects memory storage, foreign flags ignored",
			args: []string{"-d", "", "-c", "cfg.json", "-x", "1"},
			expected: &Config{
				CORSOrigins: []string{},
			},
		},
		{
			name:        "bad number",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
