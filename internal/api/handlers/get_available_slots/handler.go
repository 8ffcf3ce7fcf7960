package get_available_slots

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers"
	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	getAvailableSlots "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/get_available_slots"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/ptr"
)

const (
	msgMissingProductTypes = "productTypes query parameter is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDeliveryType = "unknown delivery type"
	msgInvalidRequest      = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/pincodes/{pincode}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pincode := vars["pincode"]

	query := r.URL.Query()

	// productTypes - CSV список типов товаров в заказе
	productTypes := splitCSV(query.Get("productTypes"))
	if len(productTypes) == 0 {
		h.logger.Warn("GET /pincodes/{pincode}/available-slots - Missing product types: pincode=%s", pincode)
		handlers.RespondBadRequest(w, msgMissingProductTypes)
		return
	}

	useCaseReq := &getAvailableSlots.Request{
		Pincode:      pincode,
		ProductTypes: productTypes,
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /pincodes/{pincode}/available-slots - Invalid date: pincode=%s, date=%s", pincode, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.DeliveryDate = ptr.Ptr(date)
	}

	if dtStr := query.Get("deliveryType"); dtStr != "" {
		dt := domain.DeliveryType(dtStr)
		if !domain.IsKnownDeliveryType(dt) {
			h.logger.Warn("GET /pincodes/{pincode}/available-slots - Invalid delivery type: pincode=%s, type=%s", pincode, dtStr)
			handlers.RespondBadRequest(w, msgInvalidDeliveryType)
			return
		}
		useCaseReq.DeliveryType = dt
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /pincodes/{pincode}/available-slots - Invalid request: pincode=%s, error=%v", pincode, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /pincodes/{pincode}/available-slots - Failed to get slots: pincode=%s, error=%v", pincode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pincodes/{pincode}/available-slots - Returned %d slots: pincode=%s, date=%s",
		len(result.AvailableSlots), pincode, result.DeliveryDate.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
