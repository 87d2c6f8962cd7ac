package services

import (
	"context"
	"database/sql"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	wire "github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
)

// Record is the pointer side of a content type: it can take a
// server-assigned id and validate itself.
type Record[T any] interface {
	*T
	SetEntityID(wire.ID)
	Validate() error
}

// ContentService manages one content collection. Lists are served through
// a shared read-through cache keyed by the collection name and dropped on
// every successful mutation.
type ContentService[T wire.Entity, P Record[T]] struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	kind        wire.Resource
	cache       *cache.Cache

	// version is bumped by every invalidation. A List only fills the cache
	// if no mutation landed while it was reading.
	mu      sync.Mutex
	version uint64
}

func NewContentService[T wire.Entity, P Record[T]](db *sql.DB, m repomanager.RepositoryManager, kind wire.Resource, c *cache.Cache) *ContentService[T, P] {
	return &ContentService[T, P]{db: db, repomanager: m, kind: kind, cache: c}
}

func (s *ContentService[T, P]) Kind() wire.Resource {
	return s.kind
}

func (s *ContentService[T, P]) repo() *content.Repository[T] {
	return content.NewRepository[T](s.repomanager.Documents(s.db), s.kind)
}

func (s *ContentService[T, P]) List(ctx context.Context) ([]T, error) {
	if s.cache != nil {
		if data, found := s.cache.Get(string(s.kind)); found {
			return slices.Clone(data.([]T)), nil
		}
	}

	s.mu.Lock()
	v := s.version
	s.mu.Unlock()

	items, err := s.repo().List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.mu.Lock()
		if s.version == v {
			s.cache.Set(string(s.kind), slices.Clone(items), cache.DefaultExpiration)
		}
		s.mu.Unlock()
	}
	return items, nil
}

func (s *ContentService[T, P]) Get(ctx context.Context, id string) (T, error) {
	return s.repo().Get(ctx, id)
}

// Create validates v, assigns a fresh id and stores it.
func (s *ContentService[T, P]) Create(ctx context.Context, v T) (T, error) {
	if err := P(&v).Validate(); err != nil {
		return v, err
	}
	P(&v).SetEntityID(wire.ID(uuid.NewString()))

	if err := s.repo().Create(ctx, v); err != nil {
		return v, err
	}
	s.invalidate()
	return v, nil
}

// Update replaces the record with the given id; the id in the body is
// ignored.
func (s *ContentService[T, P]) Update(ctx context.Context, id string, v T) (T, error) {
	if err := P(&v).Validate(); err != nil {
		return v, err
	}
	P(&v).SetEntityID(wire.ID(id))

	if err := s.repo().Update(ctx, v); err != nil {
		return v, err
	}
	s.invalidate()
	return v, nil
}

func (s *ContentService[T, P]) Delete(ctx context.Context, id string) error {
	if err := s.repo().Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *ContentService[T, P]) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version++
	if s.cache != nil {
		s.cache.Delete(string(s.kind))
	}
}
