package order

import "time"

type OrderDB struct {
	ID              int64
	VendorID        int64
	CustomerID      int64
	Status          string
	SubTotal        float64
	TrackingNumber  *string
	TrackingPartner *string
	ShipName        string
	ShipAddress     string
	ShipCity        string
	ShipState       string
	ShipCountry     string
	ShipPincode     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemDB struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	Quantity      int32
	BasePrice     float64
	TaxAmount     float64
	CommissionAmt float64
	CommissionPct float64
}

type PaymentDB struct {
	ID        int64
	OrderID   int64
	Mode      string
	Amount    float64
	CreatedAt time.Time
}

type CustomerDB struct {
	ID        int64
	UserID    int64
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

type VendorDB struct {
	ID           int64
	UserID       int64
	BusinessName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TrackingDB struct {
	ID        int64
	OrderID   int64
	Status    string
	Message   string
	CreatedAt time.Time
}
