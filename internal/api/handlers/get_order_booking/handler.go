package get_order_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers"
	"github.com/freshkart/FK-DeliverySlotsService/internal/api/middleware"
	"github.com/freshkart/FK-DeliverySlotsService/internal/service/bookings"
)

const (
	msgInvalidOrderID    = "invalid order id"
	msgNotFound          = "no booking found for this order"
	msgMissingCustomerID = "missing customer id"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/{orderId}/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /orders/{orderId}/booking - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	booking, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /orders/{orderId}/booking - No booking: order=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /orders/{orderId}/booking - Invalid order ID: order=%s", orderID)
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		default:
			h.logger.Error("GET /orders/{orderId}/booking - Failed to get booking: order=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orders/{orderId}/booking - Booking retrieved successfully: order=%s, customer=%s",
		orderID, customerID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
