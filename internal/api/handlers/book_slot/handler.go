package book_slot

import (
	"errors"
	"net/http"

	"github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers"
	"github.com/freshkart/FK-DeliverySlotsService/internal/api/middleware"
	bookSlot "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlotFields  = "invalid slot date or time format"
	msgMissingCustomerID  = "missing customer id"
	msgSlotNotAvailable   = "selected slot is no longer available, please pick another slot"
	msgInvalidRequest     = "invalid request parameters"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Идентификатор клиента из контекста (через middleware Auth)
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: order=%s, error=%v", req.OrderID, err)
		handlers.RespondBadRequest(w, msgInvalidSlotFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: order=%s, slot=%s, pincode=%s",
				req.OrderID, req.SelectedSlot.SlotID, req.CustomerAddress.Pincode)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid request: order=%s, error=%v", req.OrderID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed to book slot: order=%s, customer=%s, error=%v",
				req.OrderID, customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, order=%s, customer=%s",
		result.BookingID, req.OrderID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
