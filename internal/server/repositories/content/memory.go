package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

type memoryDoc struct {
	id   string
	body json.RawMessage
}

// MemoryStore keeps documents in process memory, in insertion order per
// kind.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[models.Resource][]memoryDoc
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[models.Resource][]memoryDoc)}
}

func (s *MemoryStore) List(_ context.Context, kind models.Resource) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]json.RawMessage, 0, len(s.docs[kind]))
	for _, d := range s.docs[kind] {
		out = append(out, bytes.Clone(d.body))
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, kind models.Resource, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(kind, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return bytes.Clone(s.docs[kind][i].body), nil
}

func (s *MemoryStore) Create(_ context.Context, kind models.Resource, id string, body json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(kind, id) >= 0 {
		return fmt.Errorf("%s %s: %w", kind, id, common.ErrorAlreadyExists)
	}
	s.docs[kind] = append(s.docs[kind], memoryDoc{id: id, body: bytes.Clone(body)})
	return nil
}

func (s *MemoryStore) Update(_ context.Context, kind models.Resource, id string, body json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(kind, id)
	if i < 0 {
		return common.ErrorNotFound
	}
	s.docs[kind][i].body = bytes.Clone(body)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, kind models.Resource, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(kind, id)
	if i < 0 {
		return common.ErrorNotFound
	}
	s.docs[kind] = slices.Delete(s.docs[kind], i, i+1)
	return nil
}

func (s *MemoryStore) index(kind models.Resource, id string) int {
	return slices.IndexFunc(s.docs[kind], func(d memoryDoc) bool { return d.id == id })
}
