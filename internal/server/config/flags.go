package config

import (
	"flag"
	"strings"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN, empty for in-memory storage
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-u string   admin username
//	-p string   admin password
//	-o string   allowed CORS origins, comma separated
//	-l int      public list cache TTL, seconds
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000")
//	-k string   S3 access key
//	-w string   S3 secret key
//	-m string   public base URL of uploaded images
//
// Duration flags are integers and are converted to time.Duration values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-u", "-p", "-o", "-l", "-b", "-g", "-e", "-k", "-w", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	accessTokenValidity := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&cfg.AdminUser, "u", cfg.AdminUser, "admin username")
	fs.StringVar(&cfg.AdminPassword, "p", cfg.AdminPassword, "admin password")
	origins := fs.String("o", strings.Join(cfg.CORSOrigins, ","), "allowed CORS origins")
	cacheTTL := fs.Int("l", int(cfg.CacheTTL.Seconds()), "list cache TTL (in seconds)")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3AccessKey, "k", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "w", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.S3PublicURL, "m", cfg.S3PublicURL, "public base URL of uploaded images")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	cfg.CORSOrigins = flagx.SplitList(*origins)
	cfg.CacheTTL = time.Duration(*cacheTTL) * time.Second
}
