package auto_select_slot

import (
	getAvailableSlotsHandler "github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers/get_available_slots"
	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	autoSelectSlot "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/auto_select_slot"
)

// AutoSelectSlotResponse HTTP модель ответа автоподбора слота
type AutoSelectSlotResponse struct {
	Success          bool                                        `json:"success"`
	Message          string                                      `json:"message,omitempty"`
	SelectedSlot     *getAvailableSlotsHandler.SlotOfferResponse `json:"selectedSlot,omitempty"`
	DeliveryDate     string                                      `json:"deliveryDate,omitempty"`
	DeliveryType     string                                      `json:"deliveryType,omitempty"`
	SelectionReason  string                                      `json:"selectionReason,omitempty"`
	AlternativeSlots []getAvailableSlotsHandler.SlotOfferResponse `json:"alternativeSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *autoSelectSlot.Response) *AutoSelectSlotResponse {
	out := &AutoSelectSlotResponse{
		Success:          resp.Success,
		Message:          resp.Message,
		DeliveryType:     string(resp.DeliveryType),
		SelectionReason:  string(resp.SelectionReason),
		AlternativeSlots: make([]getAvailableSlotsHandler.SlotOfferResponse, 0, len(resp.AlternativeSlots)),
	}
	if resp.SelectedSlot != nil {
		selected := getAvailableSlotsHandler.FromUseCaseOffer(resp.SelectedSlot)
		out.SelectedSlot = &selected
	}
	if !resp.DeliveryDate.IsZero() {
		out.DeliveryDate = resp.DeliveryDate.Format(domain.DateFormat)
	}
	for i := range resp.AlternativeSlots {
		out.AlternativeSlots = append(out.AlternativeSlots, getAvailableSlotsHandler.FromUseCaseOffer(&resp.AlternativeSlots[i]))
	}
	return out
}
