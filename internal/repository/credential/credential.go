package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/fulfillment"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetLatestByNameAndRole returns the current credential for a
// (name, role) pair: the most recently inserted row wins, which is how
// rotation works.
func (r *Repository) GetLatestByNameAndRole(ctx context.Context, name string, role entities.RoleType) (*entities.Credential, error) {
	query := `
		SELECT id, name, role, secret, created_at
		FROM api_credentials
		WHERE name = $1 AND role = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var credentialDB CredentialDB
	err := r.querier.QueryRow(ctx, query, name, role.String()).Scan(
		&credentialDB.ID,
		&credentialDB.Name,
		&credentialDB.Role,
		&credentialDB.Secret,
		&credentialDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fulfillment.ErrCredentialMissing
		}
		return nil, fmt.Errorf("unexpected credential repository get error: %w", err)
	}

	return ToDomain(&credentialDB), nil
}

func (r *Repository) Create(ctx context.Context, credentialModify entities.CredentialModify) (int64, error) {
	credentialModifyDB := FromDomainModify(&credentialModify)

	query := `
		INSERT INTO api_credentials (name, role, secret)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		credentialModifyDB.Name,
		credentialModifyDB.Role,
		credentialModifyDB.Secret,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected credential repository create error: %w", err)
	}

	return id, nil
}
