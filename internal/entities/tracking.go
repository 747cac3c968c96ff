package entities

import "time"

// OrderTracking is an append-only audit record, one per status
// transition. Rows are never updated or deleted.
type OrderTracking struct {
	ID        int64
	OrderID   int64
	Status    OrderStatusType
	Message   string
	CreatedAt time.Time
}
