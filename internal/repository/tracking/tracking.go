package tracking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"marketplace/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
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

// Append inserts one audit row. The table is insert-only; there are no
// update or delete methods on purpose.
func (r *Repository) Append(ctx context.Context, orderID int64, status entities.OrderStatusType, message string) error {
	query := `
		INSERT INTO order_tracking (order_id, status, message)
		VALUES ($1, $2, $3)
	`

	_, err := r.querier.Exec(ctx, query, orderID, status.String(), message)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return nil
}
