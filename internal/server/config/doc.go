// Package config handles configuration for the backend: defaults, an
// optional JSON file, environment variables (optionally read from a .env
// file) and command-line flags, applied in that order.
package config
