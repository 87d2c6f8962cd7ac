// Package repomanager vends repository implementations bound to a database
// handle, so services can run the same code against the pool or inside a
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Documents(db dbx.DBTX) content.Store
	// WithTx runs fn in a transaction on db; repositories used inside fn
	// must be obtained for tx.
	WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error
}
