package check_serviceability

import (
	"github.com/shopspring/decimal"

	checkServiceability "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/check_serviceability"
)

// ServiceabilityResponse HTTP модель ответа проверки обслуживаемости
type ServiceabilityResponse struct {
	Success         bool                       `json:"success"`
	Serviceable     bool                       `json:"serviceable"`
	Pincode         string                     `json:"pincode"`
	Area            string                     `json:"area,omitempty"`
	City            string                     `json:"city,omitempty"`
	Zone            string                     `json:"zone,omitempty"`
	DeliveryTypes   []string                   `json:"deliveryTypes,omitempty"`
	ProductTypes    []string                   `json:"productTypes,omitempty"`
	MinimumCharges  map[string]decimal.Decimal `json:"minimumCharges,omitempty"`
	SpecialServices []string                   `json:"specialServices,omitempty"`
	Message         string                     `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkServiceability.Response) *ServiceabilityResponse {
	deliveryTypes := make([]string, 0, len(resp.DeliveryTypes))
	for _, dt := range resp.DeliveryTypes {
		deliveryTypes = append(deliveryTypes, string(dt))
	}

	return &ServiceabilityResponse{
		Success:         resp.Success,
		Serviceable:     resp.Serviceable,
		Pincode:         resp.Pincode,
		Area:            resp.Area,
		City:            resp.City,
		Zone:            resp.Zone,
		DeliveryTypes:   deliveryTypes,
		ProductTypes:    resp.ProductTypes,
		MinimumCharges:  resp.MinimumCharges,
		SpecialServices: resp.SpecialServices,
		Message:         resp.Message,
	}
}
