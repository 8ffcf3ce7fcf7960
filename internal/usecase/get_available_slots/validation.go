package get_available_slots

import (
	"fmt"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Pincode == "" {
		return fmt.Errorf("%w: pincode is required", ErrInvalidInput)
	}

	if len(req.ProductTypes) == 0 {
		return fmt.Errorf("%w: at least one product type is required", ErrInvalidInput)
	}

	if req.DeliveryType != "" && !domain.IsKnownDeliveryType(req.DeliveryType) {
		return fmt.Errorf("%w: unknown delivery type %q", ErrInvalidInput, req.DeliveryType)
	}

	return nil
}
