package entities

import "time"

type Customer struct {
	ID        int64
	UserID    int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
