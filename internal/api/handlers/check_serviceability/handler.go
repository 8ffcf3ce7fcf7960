package check_serviceability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers"
	checkServiceability "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/check_serviceability"
)

const msgInvalidRequest = "invalid request parameters"

type Handler struct {
	useCase CheckServiceabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckServiceabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/pincodes/{pincode}/serviceability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pincode := vars["pincode"]

	result, err := h.useCase.Execute(r.Context(), &checkServiceability.Request{Pincode: pincode})
	if err != nil {
		switch {
		case errors.Is(err, checkServiceability.ErrInvalidInput):
			h.logger.Warn("GET /pincodes/{pincode}/serviceability - Invalid request: pincode=%s, error=%v", pincode, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /pincodes/{pincode}/serviceability - Failed to check: pincode=%s, error=%v", pincode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /pincodes/{pincode}/serviceability - Checked: pincode=%s, serviceable=%t",
		pincode, result.Serviceable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
