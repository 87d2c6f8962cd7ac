package repomanager

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/users"
)

// MemoryRepositoryManager serves a single set of in-memory repositories and
// ignores the database handles it is given. WithTx serializes its callbacks
// but cannot roll anything back.
type MemoryRepositoryManager struct {
	txMu  sync.Mutex
	users *users.MemoryRepository
	docs  *content.MemoryStore
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		docs:  content.NewMemoryStore(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Documents(dbx.DBTX) content.Store {
	return m.docs
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, _ *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, nil)
}
