// Package migrations embeds the PostgreSQL schema of the backend for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
