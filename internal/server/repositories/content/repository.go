package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/models"
)

// Repository is a typed view of one kind in a Store.
type Repository[T models.Entity] struct {
	store Store
	kind  models.Resource
}

func NewRepository[T models.Entity](store Store, kind models.Resource) *Repository[T] {
	return &Repository[T]{store: store, kind: kind}
}

func (r *Repository[T]) Kind() models.Resource {
	return r.kind
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	docs, err := r.store.List(ctx, r.kind)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", r.kind, err)
		}
		items = append(items, v)
	}
	return items, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var v T
	doc, err := r.store.Get(ctx, r.kind, id)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(doc, &v); err != nil {
		return v, fmt.Errorf("decode %s document: %w", r.kind, err)
	}
	return v, nil
}

// Create stores v under v's own id.
func (r *Repository[T]) Create(ctx context.Context, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", r.kind, err)
	}
	return r.store.Create(ctx, r.kind, v.EntityID().String(), body)
}

// Update replaces the document with v's id.
func (r *Repository[T]) Update(ctx context.Context, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", r.kind, err)
	}
	return r.store.Update(ctx, r.kind, v.EntityID().String(), body)
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.kind, id)
}
