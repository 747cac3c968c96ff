package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:         o.ID,
		VendorID:   o.VendorID,
		CustomerID: o.CustomerID,
		Status:     entities.OrderStatusType(o.Status),
		SubTotal:   o.SubTotal,
		Shipping: entities.ShippingSnapshot{
			Name:    o.ShipName,
			Address: o.ShipAddress,
			City:    o.ShipCity,
			State:   o.ShipState,
			Country: o.ShipCountry,
			Pincode: o.ShipPincode,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if o.TrackingNumber != nil {
		orderEntity.TrackingNumber = *o.TrackingNumber
	}
	if o.TrackingPartner != nil {
		orderEntity.TrackingPartner = *o.TrackingPartner
	}

	return orderEntity
}

func ToItemDomain(i *OrderItemDB) entities.OrderItem {
	return entities.OrderItem{
		ID:            i.ID,
		OrderID:       i.OrderID,
		ProductID:     i.ProductID,
		Quantity:      i.Quantity,
		BasePrice:     i.BasePrice,
		TaxAmount:     i.TaxAmount,
		CommissionAmt: i.CommissionAmt,
		CommissionPct: i.CommissionPct,
	}
}

func ToPaymentDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Mode:      entities.PaymentModeType(p.Mode),
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
	}
}

func ToCustomerDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}
	customerEntity := &entities.Customer{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if c.Phone != nil {
		customerEntity.Phone = *c.Phone
	}
	return customerEntity
}

func ToVendorDomain(v *VendorDB) *entities.Vendor {
	if v == nil {
		return nil
	}
	return &entities.Vendor{
		ID:           v.ID,
		UserID:       v.UserID,
		BusinessName: v.BusinessName,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func ToTrackingDomain(t *TrackingDB) entities.OrderTracking {
	return entities.OrderTracking{
		ID:        t.ID,
		OrderID:   t.OrderID,
		Status:    entities.OrderStatusType(t.Status),
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
	}
}
