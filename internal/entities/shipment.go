package entities

// ShipmentRequest is the aggregator-facing shipment order, built from an
// order snapshot by the fulfillment service. Field values follow the
// aggregator's conventions (date-only order date, flat billing block).
type ShipmentRequest struct {
	OrderRef       string
	OrderDate      string
	PickupLocation string

	BillingName    string
	BillingAddress string
	BillingCity    string
	BillingState   string
	BillingCountry string
	BillingPincode string
	BillingPhone   string
	BillingEmail   string

	PaymentMethod string
	SubTotal      float64
	Items         []ShipmentItem

	Length  float64
	Breadth float64
	Height  float64
	Weight  float64
}

type ShipmentItem struct {
	Name         string
	SKU          string
	Units        int32
	SellingPrice float64
	Tax          float64
}

// ShipmentAssignment is the carrier assignment the aggregator returns.
type ShipmentAssignment struct {
	ShipmentID       int64
	AWBCode          string
	CourierCompanyID int64
	CourierName      string
}

// DispatchResult is the dispatcher's full-success projection.
type DispatchResult struct {
	Shipment ShipmentAssignment
	Order    Order
}
