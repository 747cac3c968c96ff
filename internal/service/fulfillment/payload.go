package fulfillment

import (
	"fmt"

	"marketplace/internal/entities"
)

const (
	// orderRefPrefix namespaces our ids inside the aggregator's id space
	// and marks the app channel as the origin.
	orderRefPrefix = "APP-"
	skuPrefix      = "SKU-"

	pickupLocationFallback = "Primary"
	billingPhoneFallback   = "9999999999"
)

// Parcel dimensions are fixed because the catalog does not model
// physical dimensions yet.
// TODO: thread per-product dimensions through once the catalog stores
// them; these defaults under-declare anything heavier than a small box.
const (
	parcelLengthCm  = 10.0
	parcelBreadthCm = 10.0
	parcelHeightCm  = 10.0
	parcelWeightKg  = 0.5
)

// BuildShipmentRequest maps an order snapshot to the aggregator's
// shipment-creation shape. Pure: it reads only its arguments.
//
// Billing fields come from the shipping snapshot, not from the live
// customer record, because the snapshot is what the customer approved at
// checkout. The phone is the one field the snapshot does not carry, so it
// falls back to a placeholder when the customer has none on file.
func BuildShipmentRequest(order *entities.Order, vendor *entities.Vendor) *entities.ShipmentRequest {
	pickupLocation := pickupLocationFallback
	if vendor.BusinessName != "" {
		pickupLocation = vendor.BusinessName
	}

	items := make([]entities.ShipmentItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, entities.ShipmentItem{
			Name:         fmt.Sprintf("Item %d", item.ProductID),
			SKU:          fmt.Sprintf("%s%d", skuPrefix, item.ProductID),
			Units:        item.Quantity,
			SellingPrice: item.BasePrice,
			Tax:          item.TaxAmount,
		})
	}

	return &entities.ShipmentRequest{
		OrderRef:       fmt.Sprintf("%s%d", orderRefPrefix, order.ID),
		OrderDate:      order.CreatedAt.Format("2006-01-02"),
		PickupLocation: pickupLocation,

		BillingName:    order.Shipping.Name,
		BillingAddress: order.Shipping.Address,
		BillingCity:    order.Shipping.City,
		BillingState:   order.Shipping.State,
		BillingCountry: order.Shipping.Country,
		BillingPincode: order.Shipping.Pincode,
		BillingPhone:   billingPhone(order.Customer),
		BillingEmail:   billingEmail(order.Customer),

		PaymentMethod: paymentMethod(order.Payment),
		SubTotal:      order.SubTotal,
		Items:         items,

		Length:  parcelLengthCm,
		Breadth: parcelBreadthCm,
		Height:  parcelHeightCm,
		Weight:  parcelWeightKg,
	}
}

func paymentMethod(payment *entities.Payment) string {
	if payment != nil && payment.Mode == entities.PaymentCOD {
		return "COD"
	}
	return "Prepaid"
}

func billingPhone(customer *entities.Customer) string {
	if customer == nil || customer.Phone == "" {
		return billingPhoneFallback
	}
	return customer.Phone
}

func billingEmail(customer *entities.Customer) string {
	if customer == nil {
		return ""
	}
	return customer.Email
}
