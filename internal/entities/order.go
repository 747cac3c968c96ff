package entities

import "time"

type Order struct {
	ID              int64
	VendorID        int64
	CustomerID      int64
	Status          OrderStatusType
	SubTotal        float64
	TrackingNumber  string
	TrackingPartner string
	Shipping        ShippingSnapshot
	Items           []OrderItem
	Payment         *Payment
	Customer        *Customer
	Vendor          *Vendor
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderStatusType string

const (
	OrderPending OrderStatusType = "PENDING"
	// OrderDispatching marks an order handed to the shipping aggregator
	// but not yet confirmed. Written before the external call so a crash
	// in between cannot double-ship.
	OrderDispatching OrderStatusType = "DISPATCHING"
	OrderShipped     OrderStatusType = "SHIPPED"
	OrderDelivered   OrderStatusType = "DELIVERED"
	OrderReturned    OrderStatusType = "RETURNED"
	OrderCancelled   OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID              *int64
	Status          *OrderStatusType
	TrackingNumber  *string
	TrackingPartner *string
}

// ShippingSnapshot is the customer's address as captured at checkout.
// Later edits to the live address never change it.
type ShippingSnapshot struct {
	Name    string
	Address string
	City    string
	State   string
	Country string
	Pincode string
}

// OrderItem financials are snapshotted at purchase time and are never
// recomputed from the live product.
type OrderItem struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	Quantity      int32
	BasePrice     float64
	TaxAmount     float64
	CommissionAmt float64
	CommissionPct float64
}
