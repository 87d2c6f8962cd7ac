// Package content stores portfolio records as JSON documents grouped by
// kind (the REST collection name) and keyed by id.
package content

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/portfolio/internal/models"
)

// Store is the untyped document storage. Documents of a kind are listed in
// insertion order. Get, Update and Delete return common.ErrorNotFound for
// an unknown id; Create returns common.ErrorAlreadyExists for a taken one.
type Store interface {
	List(ctx context.Context, kind models.Resource) ([]json.RawMessage, error)
	Get(ctx context.Context, kind models.Resource, id string) (json.RawMessage, error)
	Create(ctx context.Context, kind models.Resource, id string, body json.RawMessage) error
	Update(ctx context.Context, kind models.Resource, id string, body json.RawMessage) error
	Delete(ctx context.Context, kind models.Resource, id string) error
}
