package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	wire "github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
)

// now is a seam for the message timestamp.
var now = time.Now

// ContactService is the inbox behind the public contact form.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

func (s *ContactService) repo(db dbx.DBTX) *content.Repository[wire.ContactMessage] {
	return content.NewRepository[wire.ContactMessage](s.repomanager.Documents(db), wire.ResourceContact)
}

// Send stores an unread message stamped with the current UTC time.
func (s *ContactService) Send(ctx context.Context, req wire.ContactMessageRequest) (wire.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return wire.ContactMessage{}, err
	}

	m := wire.ContactMessage{
		ID:        wire.ID(uuid.NewString()),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: now().UTC().Format(time.RFC3339),
	}
	if err := s.repo(s.db).Create(ctx, m); err != nil {
		return wire.ContactMessage{}, err
	}
	return m, nil
}

func (s *ContactService) List(ctx context.Context) ([]wire.ContactMessage, error) {
	return s.repo(s.db).List(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo(s.db).Delete(ctx, id)
}

// MarkRead sets the read flag. Marking a read message again is a no-op.
func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	return s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		m, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if m.Read {
			return nil
		}
		m.Read = true
		return repo.Update(ctx, m)
	})
}
