package order_paid

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/service/fulfillment"
	"marketplace/pkg/logger"
)

// paidEvent is the payment pipeline's "order paid" notification. The
// vendor's user id rides along so dispatch runs under the same identity
// an approval from the dashboard would.
type paidEvent struct {
	OrderID      int64 `json:"order_id"`
	VendorUserID int64 `json:"vendor_user_id"`
}

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		service:                  service,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.paid: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.paid: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. Returns true when ConsumeClaim
// should stop so the message gets redelivered after the rebalance.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paidEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.paid handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("vendor_user", event.VendorUserID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.paid processing")

	principal := entities.Principal{
		UserID: event.VendorUserID,
		Role:   entities.RoleVendor,
	}

	result, err := h.service.Dispatch(ctx, principal, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, fulfillment.ErrOrderNotDispatchable):
			// Already dispatched or mid-dispatch, a redelivered event is
			// the usual cause.
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler order not dispatchable")

		case errors.Is(err, fulfillment.ErrOrderNotFound),
			errors.Is(err, fulfillment.ErrVendorNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler order or vendor unknown")

		case errors.Is(err, fulfillment.ErrAggregatorTimeout):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler aggregator timed out, reconcile task will release the order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler failed to dispatch order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("order", result.Order.ID),
		logger.NewField("awb", result.Shipment.AWBCode),
		logger.NewField("courier", result.Shipment.CourierName),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.paid: dispatched")

	sess.MarkMessage(message, "")
	return false
}
