package auto_select_slot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers"
	autoSelectSlot "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/auto_select_slot"
)

const (
	msgMissingProductTypes = "productTypes query parameter is required"
	msgInvalidRequest      = "invalid request parameters"
)

type Handler struct {
	useCase AutoSelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase AutoSelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/pincodes/{pincode}/best-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pincode := vars["pincode"]

	query := r.URL.Query()

	productTypes := splitCSV(query.Get("productTypes"))
	if len(productTypes) == 0 {
		h.logger.Warn("GET /pincodes/{pincode}/best-slot - Missing product types: pincode=%s", pincode)
		handlers.RespondBadRequest(w, msgMissingProductTypes)
		return
	}

	// Неизвестное значение preference use case трактует как fastest
	useCaseReq := &autoSelectSlot.Request{
		Pincode:      pincode,
		ProductTypes: productTypes,
		Preference:   autoSelectSlot.Preference(query.Get("preference")),
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, autoSelectSlot.ErrInvalidInput):
			h.logger.Warn("GET /pincodes/{pincode}/best-slot - Invalid request: pincode=%s, error=%v", pincode, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /pincodes/{pincode}/best-slot - Failed to select slot: pincode=%s, error=%v", pincode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pincodes/{pincode}/best-slot - Selection done: pincode=%s, success=%t", pincode, result.Success)
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
