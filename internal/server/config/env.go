package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

// DotEnvFile is read into the process environment before the variables
// below are looked up. A missing file is not an error.
var DotEnvFile = ".env"

// lookupEnv is a test seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

// parseEnv overlays cfg with PORTFOLIO_* environment variables. Durations
// are whole minutes (token validity) or seconds (cache TTL); values that do
// not parse panic, like bad flags do.
func parseEnv(cfg *Config) {
	if _, err := os.Stat(DotEnvFile); err == nil {
		if err := godotenv.Load(DotEnvFile); err != nil {
			panic(err)
		}
	}

	envString(&cfg.ListenAddr, "PORTFOLIO_ADDRESS")
	if v, ok := lookupEnv("PORTFOLIO_DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	envString(&cfg.SecretKey, "PORTFOLIO_SECRET_KEY")
	envDuration(&cfg.AccessTokenValidityDuration, "PORTFOLIO_TOKEN_VALIDITY", time.Minute)
	envString(&cfg.AdminUser, "PORTFOLIO_ADMIN_USER")
	envString(&cfg.AdminPassword, "PORTFOLIO_ADMIN_PASSWORD")
	envString(&cfg.AdminEmail, "PORTFOLIO_ADMIN_EMAIL")
	if v, ok := lookupEnv("PORTFOLIO_CORS_ORIGINS"); ok && v != "" {
		cfg.CORSOrigins = flagx.SplitList(v)
	}
	envDuration(&cfg.CacheTTL, "PORTFOLIO_CACHE_TTL", time.Second)
	envString(&cfg.LogLevel, "PORTFOLIO_LOG_LEVEL")
	envString(&cfg.S3AccessKey, "PORTFOLIO_S3_ACCESS_KEY")
	envString(&cfg.S3SecretKey, "PORTFOLIO_S3_SECRET_KEY")
	envString(&cfg.S3Bucket, "PORTFOLIO_S3_BUCKET")
	envString(&cfg.S3Region, "PORTFOLIO_S3_REGION")
	envString(&cfg.S3BaseEndpoint, "PORTFOLIO_S3_ENDPOINT")
	envString(&cfg.S3PublicURL, "PORTFOLIO_S3_PUBLIC_URL")
}

func envString(dst *string, key string) {
	if v, ok := lookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envDuration(dst *time.Duration, key string, unit time.Duration) {
	v, ok := lookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = time.Duration(n) * unit
}
