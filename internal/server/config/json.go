package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
	"github.com/dmitrijs2005/portfolio/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// strings such as "1h" or integer nanoseconds.
type JsonConfig struct {
	ListenAddr                  string          `json:"listen_addr"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AdminUser                   string          `json:"admin_user"`
	AdminPassword               string          `json:"admin_password"`
	AdminEmail                  string          `json:"admin_email"`
	CORSOrigins                 []string        `json:"cors_origins"`
	CacheTTL                    *timex.Duration `json:"cache_ttl"`
	LogLevel                    string          `json:"log_level"`
	S3AccessKey                 string          `json:"s3_access_key"`
	S3SecretKey                 string          `json:"s3_secret_key"`
	S3Bucket                    string          `json:"s3_bucket"`
	S3Region                    string          `json:"s3_region"`
	S3BaseEndpoint              string          `json:"s3_base_endpoint"`
	S3PublicURL                 string          `json:"s3_public_url"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Keys
// missing from the file keep their current value; database_dsn may be set
// to "" explicitly to select in-memory storage. Read and decode errors
// panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JSONConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	var c JsonConfig
	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, &c); err != nil {
		panic(err)
	}

	setString(&cfg.ListenAddr, c.ListenAddr)
	if c.DatabaseDSN != nil {
		cfg.DatabaseDSN = *c.DatabaseDSN
	}
	setString(&cfg.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		cfg.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setString(&cfg.AdminUser, c.AdminUser)
	setString(&cfg.AdminPassword, c.AdminPassword)
	setString(&cfg.AdminEmail, c.AdminEmail)
	if c.CORSOrigins != nil {
		cfg.CORSOrigins = c.CORSOrigins
	}
	if c.CacheTTL != nil {
		cfg.CacheTTL = c.CacheTTL.Duration
	}
	setString(&cfg.LogLevel, c.LogLevel)
	setString(&cfg.S3AccessKey, c.S3AccessKey)
	setString(&cfg.S3SecretKey, c.S3SecretKey)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&cfg.S3PublicURL, c.S3PublicURL)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
