package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers"
	"github.com/freshkart/FK-DeliverySlotsService/internal/api/middleware"
	"github.com/freshkart/FK-DeliverySlotsService/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "invalid booking id"
	msgNotFound          = "booking not found"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id} - Invalid booking ID: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%s, customer=%s",
		bookingID, customerID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
