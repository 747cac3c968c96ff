package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const (
	shippingCredentialName = "shiprocket"
	courierNameFallback    = "Shiprocket"
)

type Fulfillment struct {
	log         serviceLogger
	orders      OrderRepository
	vendors     VendorRepository
	credentials CredentialRepository
	tracking    TrackingRepository
	gateway     ShipmentGateway
	notifier    Notifier
	txManager   TxManager
	stuckAfter  time.Duration
}

func New(
	log serviceLogger,
	orders OrderRepository,
	vendors VendorRepository,
	credentials CredentialRepository,
	tracking TrackingRepository,
	gateway ShipmentGateway,
	notifier Notifier,
	txManager TxManager,
	stuckAfter time.Duration,
) *Fulfillment {
	return &Fulfillment{
		log:         log.With(),
		orders:      orders,
		vendors:     vendors,
		credentials: credentials,
		tracking:    tracking,
		gateway:     gateway,
		notifier:    notifier,
		txManager:   txManager,
		stuckAfter:  stuckAfter,
	}
}

// Dispatch hands a vendor's order to the shipping aggregator and records
// the carrier assignment.
//
// Ordering of the local steps matters: the DISPATCHING marker commits
// before the external call, so the aggregator call happens at most once
// per order, and a crash in between leaves a visible marker instead of a
// duplicate shipment.
func (f *Fulfillment) Dispatch(ctx context.Context, principal entities.Principal, orderID int64) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	vendor, err := f.vendors.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve vendor: %w", err)
	}

	order, err := f.orders.GetByIDWithRelations(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	// Ownership violations collapse into not-found so foreign order ids
	// stay unguessable.
	if order.VendorID != vendor.ID {
		return nil, ErrOrderNotFound
	}

	credential, err := f.credentials.GetLatestByNameAndRole(ctx, shippingCredentialName, entities.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("load shipping credential: %w", err)
	}

	if err := f.orders.MarkDispatching(ctx, order.ID); err != nil {
		return nil, fmt.Errorf("mark dispatching: %w", err)
	}

	shipmentRequest := BuildShipmentRequest(order, vendor)

	assignment, err := f.gateway.CreateShipment(ctx, credential.Secret, shipmentRequest)
	if err != nil {
		return nil, f.failDispatch(ctx, order.ID, err)
	}

	courierName := assignment.CourierName
	if courierName == "" {
		courierName = courierNameFallback
	}

	var updated *entities.Order
	err = f.txManager.Do(ctx, func(ctx context.Context) error {
		shippedStatus := entities.OrderShipped
		orderModify := entities.OrderModify{
			ID:              &order.ID,
			Status:          &shippedStatus,
			TrackingNumber:  &assignment.AWBCode,
			TrackingPartner: &courierName,
		}

		updated, err = f.orders.CompleteDispatch(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("complete dispatch: %w", err)
		}

		trackingMessage := fmt.Sprintf("Order shipped via %s. AWB %s.", courierName, assignment.AWBCode)
		err = f.tracking.Append(ctx, order.ID, entities.OrderShipped, trackingMessage)
		if err != nil {
			return fmt.Errorf("append tracking: %w", err)
		}
		return nil
	})
	if err != nil {
		// The shipment exists upstream but the local state did not
		// advance; the marker stays DISPATCHING for the reconcile task.
		return nil, err
	}

	// The update returns only the order row, relations were loaded above.
	updated.Items = order.Items
	updated.Payment = order.Payment
	updated.Customer = order.Customer
	updated.Vendor = order.Vendor

	f.notify(ctx, updated, courierName, assignment.AWBCode)

	result := entities.DispatchResult{
		Shipment: entities.ShipmentAssignment{
			ShipmentID:       assignment.ShipmentID,
			AWBCode:          assignment.AWBCode,
			CourierCompanyID: assignment.CourierCompanyID,
			CourierName:      courierName,
		},
		Order: *updated,
	}
	return &result, nil
}

// ReleaseStuckDispatches reverts dispatch markers older than the
// configured threshold so an operator can retry those orders.
func (f *Fulfillment) ReleaseStuckDispatches(ctx context.Context) (int64, error) {
	rowsAffected, err := f.orders.ReleaseStuckDispatches(ctx, f.stuckAfter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("release stuck dispatches timed out: %w", err)
		}
		return 0, fmt.Errorf("release stuck dispatches: %w", err)
	}
	return rowsAffected, nil
}

func (f *Fulfillment) failDispatch(ctx context.Context, orderID int64, cause error) error {
	if errors.Is(cause, ErrAggregatorTimeout) {
		// Ambiguous outcome: the shipment may have been created. Keep
		// the marker and let the reconcile task release it later.
		return fmt.Errorf("create shipment: %w", cause)
	}

	if err := f.orders.RevertDispatching(ctx, orderID); err != nil {
		f.log.Warn("failed to revert dispatch marker",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
	}
	return fmt.Errorf("create shipment: %w", cause)
}

// notify fans out to administrators and the customer. Both are
// best-effort: a lost notification must not fail a dispatched order.
func (f *Fulfillment) notify(ctx context.Context, order *entities.Order, courierName, awbCode string) {
	message := fmt.Sprintf("Order #%d shipped via %s. AWB %s.", order.ID, courierName, awbCode)

	err := f.notifier.NotifyAdmins(ctx, entities.AdminNotification{
		Title:    "Order shipped",
		Message:  message,
		Category: entities.NotificationOrderStatus,
	})
	if err != nil {
		f.log.Warn("admin notification failed",
			logger.NewField("order_id", order.ID),
			logger.NewField("error", err),
		)
	}

	userNotification := entities.UserNotification{
		Title:    "Your order is on its way",
		Message:  message,
		Category: entities.NotificationOrderStatus,
		VendorID: order.VendorID,
	}
	if order.Customer != nil {
		userNotification.UserID = order.Customer.UserID
	}
	if len(order.Items) > 0 {
		userNotification.ProductID = order.Items[0].ProductID
	}

	err = f.notifier.NotifyUser(ctx, userNotification)
	if err != nil {
		f.log.Warn("customer notification failed",
			logger.NewField("order_id", order.ID),
			logger.NewField("error", err),
		)
	}
}
