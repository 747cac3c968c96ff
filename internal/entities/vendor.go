package entities

import "time"

type Vendor struct {
	ID           int64
	UserID       int64
	BusinessName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
