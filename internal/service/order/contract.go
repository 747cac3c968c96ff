//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	// GetVendorOrder resolves ownership in the query itself: the order
	// must belong to the vendor owned by userID, otherwise it does not
	// exist as far as the caller can tell.
	GetVendorOrder(ctx context.Context, userID, orderID int64) (*entities.Order, error)

	ListTracking(ctx context.Context, orderID int64) ([]entities.OrderTracking, error)
}
