package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

const uniqueViolation = "23505"

// PostgresStore keeps documents in the JSONB column of the documents table.
type PostgresStore struct {
	db dbx.DBTX
}

func NewPostgresStore(db dbx.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, kind models.Resource) ([]json.RawMessage, error) {
	query :=
		`SELECT body FROM documents
		 WHERE kind = $1
		 ORDER BY created_at, id
		 `

	rows, err := s.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	docs := make([]json.RawMessage, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		docs = append(docs, body)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return docs, nil
}

func (s *PostgresStore) Get(ctx context.Context, kind models.Resource, id string) (json.RawMessage, error) {
	query :=
		`SELECT body FROM documents
		 WHERE kind = $1 AND id = $2
		 `

	var body []byte
	err := s.db.QueryRowContext(ctx, query, string(kind), id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return body, nil
}

func (s *PostgresStore) Create(ctx context.Context, kind models.Resource, id string, body json.RawMessage) error {
	query :=
		`INSERT INTO documents (kind, id, body)
		 VALUES ($1, $2, $3)
		 `

	if _, err := s.db.ExecContext(ctx, query, string(kind), id, []byte(body)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%s %s: %w", kind, id, common.ErrorAlreadyExists)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, kind models.Resource, id string, body json.RawMessage) error {
	query :=
		`UPDATE documents SET body = $3, updated_at = now()
		 WHERE kind = $1 AND id = $2
		 `

	res, err := s.db.ExecContext(ctx, query, string(kind), id, []byte(body))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (s *PostgresStore) Delete(ctx context.Context, kind models.Resource, id string) error {
	query :=
		`DELETE FROM documents
		 WHERE kind = $1 AND id = $2
		 `

	res, err := s.db.ExecContext(ctx, query, string(kind), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
