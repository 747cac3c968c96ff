package order

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Order struct {
	repository Repository
}

func New(repository Repository) *Order {
	return &Order{
		repository: repository,
	}
}

func (s *Order) GetVendorOrder(ctx context.Context, principal entities.Principal, orderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetVendorOrder(ctx, principal.UserID, orderID)
	if err != nil {
		return nil, fmt.Errorf("get vendor order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) GetOrderTracking(ctx context.Context, principal entities.Principal, orderID int64) ([]entities.OrderTracking, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	// Ownership check first; tracking rows carry no vendor scope of
	// their own.
	orderEntity, err := s.repository.GetVendorOrder(ctx, principal.UserID, orderID)
	if err != nil {
		return nil, fmt.Errorf("get vendor order: %w", err)
	}

	tracking, err := s.repository.ListTracking(ctx, orderEntity.ID)
	if err != nil {
		return nil, fmt.Errorf("list tracking: %w", err)
	}

	return tracking, nil
}
