package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"marketplace/internal/entities"
)

const (
	audienceAdmin = "admin"
	audienceUser  = "user"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Repository is the notification sink: admin and customer notifications
// are rows the dashboard surfaces later.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) NotifyAdmins(ctx context.Context, notification entities.AdminNotification) error {
	query := `
		INSERT INTO notifications (title, message, category, audience)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		notification.Title,
		notification.Message,
		notification.Category,
		audienceAdmin,
	)
	if err != nil {
		return fmt.Errorf("unexpected notification repository notify admins error: %w", err)
	}

	return nil
}

func (r *Repository) NotifyUser(ctx context.Context, notification entities.UserNotification) error {
	query := `
		INSERT INTO notifications (title, message, category, audience, user_id, vendor_id, product_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		notification.Title,
		notification.Message,
		notification.Category,
		audienceUser,
		nullableID(notification.UserID),
		nullableID(notification.VendorID),
		nullableID(notification.ProductID),
	)
	if err != nil {
		return fmt.Errorf("unexpected notification repository notify user error: %w", err)
	}

	return nil
}

func nullableID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
