//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fulfillment_test
package fulfillment

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type OrderRepository interface {
	// GetByIDWithRelations loads the order together with its vendor,
	// customer, items and payment.
	GetByIDWithRelations(ctx context.Context, orderID int64) (*entities.Order, error)

	// MarkDispatching performs the conditional PENDING -> DISPATCHING
	// transition. Any other starting state fails with
	// ErrOrderNotDispatchable.
	MarkDispatching(ctx context.Context, orderID int64) error

	// RevertDispatching releases the marker, DISPATCHING -> PENDING.
	RevertDispatching(ctx context.Context, orderID int64) error

	// CompleteDispatch performs DISPATCHING -> SHIPPED together with the
	// tracking field updates.
	CompleteDispatch(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)

	// ReleaseStuckDispatches reverts DISPATCHING orders older than the
	// threshold back to PENDING and reports how many were released.
	ReleaseStuckDispatches(ctx context.Context, olderThan time.Duration) (int64, error)
}

type VendorRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.Vendor, error)
}

type CredentialRepository interface {
	GetLatestByNameAndRole(ctx context.Context, name string, role entities.RoleType) (*entities.Credential, error)
}

type TrackingRepository interface {
	Append(ctx context.Context, orderID int64, status entities.OrderStatusType, message string) error
}

type ShipmentGateway interface {
	CreateShipment(ctx context.Context, token string, shipmentRequest *entities.ShipmentRequest) (*entities.ShipmentAssignment, error)
}

type Notifier interface {
	NotifyAdmins(ctx context.Context, notification entities.AdminNotification) error
	NotifyUser(ctx context.Context, notification entities.UserNotification) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
