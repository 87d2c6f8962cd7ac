package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	wire "github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

func init() {
	// bcrypt.DefaultCost заметно тормозит тесты
	hashPassword = func(password []byte) ([]byte, error) {
		return bcrypt.GenerateFromPassword(password, bcrypt.MinCost)
	}
}

// brokenManager fails every storage call.
type brokenManager struct{}

var _ repomanager.RepositoryManager = brokenManager{}

func (brokenManager) RunMigrations(context.Context, *sql.DB) error { return errBoom }
func (brokenManager) Users(dbx.DBTX) users.Repository              { return brokenUsers{} }
func (brokenManager) Documents(dbx.DBTX) content.Store             { return brokenStore{} }
func (brokenManager) WithTx(ctx context.Context, _ *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

type brokenUsers struct{}

func (brokenUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, errBoom }
func (brokenUsers) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, errBoom
}

type brokenStore struct{}

func (brokenStore) List(context.Context, wire.Resource) ([]json.RawMessage, error) {
	return nil, errBoom
}
func (brokenStore) Get(context.Context, wire.Resource, string) (json.RawMessage, error) {
	return nil, errBoom
}
func (brokenStore) Create(context.Context, wire.Resource, string, json.RawMessage) error {
	return errBoom
}
func (brokenStore) Update(context.Context, wire.Resource, string, json.RawMessage) error {
	return errBoom
}
func (brokenStore) Delete(context.Context, wire.Resource, string) error { return errBoom }

// hookManager wraps the in-memory storage and runs afterList once, right
// after the first List has read its documents.
type hookManager struct {
	*repomanager.MemoryRepositoryManager
	once      sync.Once
	afterList func()
}

func (m *hookManager) Documents(db dbx.DBTX) content.Store {
	return hookStore{Store: m.MemoryRepositoryManager.Documents(db), m: m}
}

type hookStore struct {
	content.Store
	m *hookManager
}

func (s hookStore) List(ctx context.Context, kind wire.Resource) ([]json.RawMessage, error) {
	docs, err := s.Store.List(ctx, kind)
	s.m.once.Do(s.m.afterList)
	return docs, err
}
