package order_approve_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/service/fulfillment"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := identity.FromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var approveDTO dto.ApproveOrderRequest
	err := json.NewDecoder(r.Body).Decode(&approveDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := h.service.Dispatch(r.Context(), principal, approveDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, fulfillment.ErrInvalidOrderID):
			h.writeError(w, http.StatusBadRequest, "invalid order id")
		case errors.Is(err, fulfillment.ErrVendorNotFound),
			errors.Is(err, fulfillment.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, fulfillment.ErrOrderNotDispatchable):
			h.writeError(w, http.StatusConflict, "order is not in a dispatchable state")
		case errors.Is(err, fulfillment.ErrAggregatorTimeout):
			// Сообщение агрегатора отдаем как есть, вызывающая сторона доверенная.
			h.writeError(w, http.StatusGatewayTimeout, err.Error())
		case errors.Is(err, fulfillment.ErrAggregatorFailure):
			h.writeError(w, http.StatusBadGateway, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := dto.ApproveOrderResponse{
		Message:  "Order approved and shipped",
		Shipment: toShipmentDTO(result.Shipment),
		Order:    toOrderDTO(&result.Order),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON error response")
	}
}

func toShipmentDTO(assignment entities.ShipmentAssignment) dto.Shipment {
	return dto.Shipment{
		ShipmentID:       assignment.ShipmentID,
		AwbCode:          assignment.AWBCode,
		CourierCompanyID: assignment.CourierCompanyID,
		CourierName:      assignment.CourierName,
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			BasePrice: item.BasePrice,
			TaxAmount: item.TaxAmount,
		})
	}

	orderDTO := dto.Order{
		ID:        orderEntity.ID,
		Status:    orderEntity.Status.String(),
		SubTotal:  orderEntity.SubTotal,
		Items:     items,
		CreatedAt: orderEntity.CreatedAt,
	}

	if orderEntity.TrackingNumber != "" {
		orderDTO.TrackingNumber = &orderEntity.TrackingNumber
	}
	if orderEntity.TrackingPartner != "" {
		orderDTO.TrackingPartner = &orderEntity.TrackingPartner
	}

	return orderDTO
}
