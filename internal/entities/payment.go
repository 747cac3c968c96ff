package entities

import "time"

type Payment struct {
	ID        int64
	OrderID   int64
	Mode      PaymentModeType
	Amount    float64
	CreatedAt time.Time
}

type PaymentModeType string

const (
	PaymentCOD     PaymentModeType = "COD"
	PaymentGateway PaymentModeType = "GATEWAY"
)

func (m PaymentModeType) String() string {
	return string(m)
}
