package shiprocket

import "marketplace/internal/entities"

func fromDomain(shipmentReq *entities.ShipmentRequest) *createShipmentRequest {
	if shipmentReq == nil {
		return nil
	}

	items := make([]shipmentOrderItem, 0, len(shipmentReq.Items))
	for _, item := range shipmentReq.Items {
		items = append(items, shipmentOrderItem{
			Name:         item.Name,
			SKU:          item.SKU,
			Units:        item.Units,
			SellingPrice: item.SellingPrice,
			Tax:          item.Tax,
		})
	}

	return &createShipmentRequest{
		OrderID:           shipmentReq.OrderRef,
		OrderDate:         shipmentReq.OrderDate,
		PickupLocation:    shipmentReq.PickupLocation,
		BillingName:       shipmentReq.BillingName,
		BillingAddress:    shipmentReq.BillingAddress,
		BillingCity:       shipmentReq.BillingCity,
		BillingState:      shipmentReq.BillingState,
		BillingCountry:    shipmentReq.BillingCountry,
		BillingPincode:    shipmentReq.BillingPincode,
		BillingEmail:      shipmentReq.BillingEmail,
		BillingPhone:      shipmentReq.BillingPhone,
		ShippingIsBilling: true,
		OrderItems:        items,
		PaymentMethod:     shipmentReq.PaymentMethod,
		SubTotal:          shipmentReq.SubTotal,
		Length:            shipmentReq.Length,
		Breadth:           shipmentReq.Breadth,
		Height:            shipmentReq.Height,
		Weight:            shipmentReq.Weight,
	}
}

func toDomain(resp *createShipmentResponse) *entities.ShipmentAssignment {
	if resp == nil {
		return nil
	}

	return &entities.ShipmentAssignment{
		ShipmentID:       resp.ShipmentID,
		AWBCode:          resp.AWBCode,
		CourierCompanyID: resp.CourierCompanyID,
		CourierName:      resp.CourierName,
	}
}
