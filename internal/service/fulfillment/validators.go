package fulfillment

func isValidOrderID(orderID int64) bool {
	return orderID > 0
}
