package entities

import "time"

const NotificationOrderStatus = "order-status"

type AdminNotification struct {
	Title    string
	Message  string
	Category string
}

type UserNotification struct {
	Title     string
	Message   string
	Category  string
	UserID    int64
	VendorID  int64
	ProductID int64
}

type Notification struct {
	ID        int64
	Title     string
	Message   string
	Category  string
	Audience  string
	UserID    *int64
	VendorID  *int64
	ProductID *int64
	CreatedAt time.Time
}
