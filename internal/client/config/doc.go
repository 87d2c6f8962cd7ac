// Package config loads runtime configuration for the portfolio admin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API (default http://localhost:8080/api)
//	-s string   session database file (default session.db)
//	-l string   log level
//	-i int      server status check interval (seconds)
//
// # JSON schema
//
//	{
//	  "base_url": "https://portfolio.example.com/api",
//	  "session_path": "/home/me/.portfolio/session.db",
//	  "log_level": "info",
//	  "status_check_interval": "5s"
//	}
package config
