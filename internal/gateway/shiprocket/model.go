package shiprocket

type createShipmentRequest struct {
	OrderID           string              `json:"order_id"`
	OrderDate         string              `json:"order_date"`
	PickupLocation    string              `json:"pickup_location"`
	BillingName       string              `json:"billing_customer_name"`
	BillingAddress    string              `json:"billing_address"`
	BillingCity       string              `json:"billing_city"`
	BillingState      string              `json:"billing_state"`
	BillingCountry    string              `json:"billing_country"`
	BillingPincode    string              `json:"billing_pincode"`
	BillingEmail      string              `json:"billing_email"`
	BillingPhone      string              `json:"billing_phone"`
	ShippingIsBilling bool                `json:"shipping_is_billing"`
	OrderItems        []shipmentOrderItem `json:"order_items"`
	PaymentMethod     string              `json:"payment_method"`
	SubTotal          float64             `json:"sub_total"`
	Length            float64             `json:"length"`
	Breadth           float64             `json:"breadth"`
	Height            float64             `json:"height"`
	Weight            float64             `json:"weight"`
}

type shipmentOrderItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int32   `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	Tax          float64 `json:"tax"`
}

type createShipmentResponse struct {
	ShipmentID       int64  `json:"shipment_id"`
	AWBCode          string `json:"awb_code"`
	CourierCompanyID int64  `json:"courier_company_id"`
	CourierName      string `json:"courier_name"`
}

type errorResponse struct {
	Message string `json:"message"`
}
