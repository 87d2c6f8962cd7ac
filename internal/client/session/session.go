// Package session persists the admin's authenticated session (token and
// user record) between CLI runs.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

type Session struct {
	Token string
	User  models.AuthUser
}

// Store holds at most one session. It is also the TokenSource of the API
// client, so every request sees the current token.
type Store interface {
	Save(ctx context.Context, token string, user models.AuthUser) error
	Clear(ctx context.Context) error
	// Restore returns (nil, false) when no complete, parseable session is stored.
	Restore(ctx context.Context) (*Session, bool)
	Token(ctx context.Context) (string, error)
}

// SQLiteStore keeps the session in the local metadata table under the
// auth_token and auth_user keys.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(ctx context.Context, token string, user models.AuthUser) error {
	u, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionUserKey, u)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.SessionTokenKey, common.SessionUserKey)
}

func (s *SQLiteStore) Restore(ctx context.Context) (*Session, bool) {
	var (
		token []byte
		user  []byte
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		var err error
		if token, err = repo.Get(ctx, common.SessionTokenKey); err != nil {
			return err
		}
		user, err = repo.Get(ctx, common.SessionUserKey)
		return err
	})
	if err != nil {
		return nil, false
	}
	return decode(token, user)
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.SessionTokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func decode(token, user []byte) (*Session, bool) {
	if len(token) == 0 || len(user) == 0 {
		return nil, false
	}
	var u models.AuthUser
	if err := json.Unmarshal(user, &u); err != nil {
		return nil, false
	}
	return &Session{Token: string(token), User: u}, true
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, token string, user models.AuthUser) error {
	u, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.user = token, u
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.user = "", nil
	return nil
}

func (m *MemoryStore) Restore(context.Context) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return decode([]byte(m.token), m.user)
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}
