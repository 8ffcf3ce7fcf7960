package get_available_slots

import (
	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	getAvailableSlots "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/get_available_slots"
)

// SlotOfferResponse HTTP модель предложения слота
type SlotOfferResponse struct {
	SlotID                string             `json:"slotId"`
	SlotName              string             `json:"slotName"`
	StartTime             string             `json:"startTime"`
	EndTime               string             `json:"endTime"`
	DeliveryCharge        decimal.Decimal    `json:"deliveryCharge"`
	AvailableCapacity     int                `json:"availableCapacity"`
	MaxCapacity           int                `json:"maxCapacity"`
	EstimatedDeliveryTime string             `json:"estimatedDeliveryTime"`
	SpecialRules          domain.SpecialRules `json:"specialRules"`
	Area                  string             `json:"area"`
	City                  string             `json:"city"`
}

// GetAvailableSlotsResponse HTTP модель ответа
type GetAvailableSlotsResponse struct {
	Success        bool                `json:"success"`
	Message        string              `json:"message,omitempty"`
	Pincode        string              `json:"pincode"`
	DeliveryDate   string              `json:"deliveryDate,omitempty"`
	DeliveryType   string              `json:"deliveryType,omitempty"`
	ProductType    string              `json:"productType,omitempty"`
	AvailableSlots []SlotOfferResponse `json:"availableSlots"`
}

// FromUseCaseOffer конвертирует предложение слота use case в HTTP модель
func FromUseCaseOffer(offer *getAvailableSlots.SlotOffer) SlotOfferResponse {
	return SlotOfferResponse{
		SlotID:                offer.SlotID,
		SlotName:              offer.SlotName,
		StartTime:             offer.StartTime.String(),
		EndTime:               offer.EndTime.String(),
		DeliveryCharge:        offer.DeliveryCharge,
		AvailableCapacity:     offer.AvailableCapacity,
		MaxCapacity:           offer.MaxCapacity,
		EstimatedDeliveryTime: offer.EstimatedDeliveryTime.String(),
		SpecialRules:          offer.SpecialRules,
		Area:                  offer.Area,
		City:                  offer.City,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	out := &GetAvailableSlotsResponse{
		Success:        resp.Success,
		Message:        resp.Message,
		Pincode:        resp.Pincode,
		DeliveryType:   string(resp.DeliveryType),
		ProductType:    resp.ProductType,
		AvailableSlots: make([]SlotOfferResponse, 0, len(resp.AvailableSlots)),
	}
	if !resp.DeliveryDate.IsZero() {
		out.DeliveryDate = resp.DeliveryDate.Format(domain.DateFormat)
	}
	for i := range resp.AvailableSlots {
		out.AvailableSlots = append(out.AvailableSlots, FromUseCaseOffer(&resp.AvailableSlots[i]))
	}
	return out
}
