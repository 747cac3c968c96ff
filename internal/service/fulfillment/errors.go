package fulfillment

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrOrderNotFound also covers orders owned by another vendor, so a
	// probing caller cannot learn whether a foreign order id exists.
	ErrOrderNotFound = errors.New("order not found")

	ErrOrderNotDispatchable = errors.New("order is not in a dispatchable state")
	ErrCredentialMissing    = errors.New("shipping credential missing")

	ErrAggregatorFailure = errors.New("shipping aggregator failure")
	// ErrAggregatorTimeout is kept distinct from ErrAggregatorFailure:
	// the shipment may exist upstream, so the dispatch marker is not
	// reverted and the call is safe to classify as retryable.
	ErrAggregatorTimeout = errors.New("shipping aggregator timeout")
)
