package auto_select_slot

import (
	"context"
	"fmt"
	"time"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	getAvailableSlots "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/get_available_slots"
)

// UseCase use case автоматического выбора лучшего слота: обходит
// пространство поиска (3 дня x типы доставки) и применяет политику
// предпочтения к первому дню с доступными слотами
type UseCase struct {
	slotFinder   SlotFinder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotFinder SlotFinder, logger Logger) *UseCase {
	return &UseCase{
		slotFinder:   slotFinder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case автоматического выбора слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AutoSelectSlot: validation failed: %v", err)
		return nil, err
	}

	preference := req.Preference
	if preference == "" {
		preference = PreferenceFastest
	}

	uc.logger.Info("AutoSelectSlot: pincode=%s, productTypes=%v, preference=%s",
		req.Pincode, req.ProductTypes, preference)

	today := uc.timeProvider.Now().UTC()

	for _, cand := range searchOrder {
		date := today.AddDate(0, 0, cand.daysAhead)
		deliveryDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		result, err := uc.slotFinder.Execute(ctx, &getAvailableSlots.Request{
			Pincode:      req.Pincode,
			ProductTypes: req.ProductTypes,
			DeliveryDate: &deliveryDate,
			DeliveryType: cand.deliveryType,
		})
		if err != nil {
			uc.logger.Error("AutoSelectSlot: slot search failed for date=%s type=%s: %v",
				deliveryDate.Format(domain.DateFormat), cand.deliveryType, err)
			return nil, fmt.Errorf("%w: slot search failed: %v", ErrInternal, err)
		}

		if !result.Success || len(result.AvailableSlots) == 0 {
			continue
		}

		// Первая успешная пара (дата, тип) выигрывает
		selected := pickByPreference(result.AvailableSlots, preference)

		// До 4 альтернатив из того же списка (всегда offers[1:5],
		// независимо от того, какой слот выбран политикой)
		alternatives := result.AvailableSlots[1:min(len(result.AvailableSlots), domain.MaxAlternativeSlots+1)]

		uc.logger.Info("AutoSelectSlot: selected slot=%s date=%s type=%s (%d alternatives)",
			selected.SlotID, deliveryDate.Format(domain.DateFormat), cand.deliveryType, len(alternatives))

		return &Response{
			Success:          true,
			SelectedSlot:     &selected,
			DeliveryDate:     deliveryDate,
			DeliveryType:     cand.deliveryType,
			SelectionReason:  preference,
			AlternativeSlots: alternatives,
		}, nil
	}

	uc.logger.Info("AutoSelectSlot: no slots for pincode=%s within %d days",
		req.Pincode, domain.AutoSelectHorizonDays)

	return &Response{
		Success: false,
		Message: fmt.Sprintf("No delivery slots available for pincode %s in the next %d days",
			req.Pincode, domain.AutoSelectHorizonDays),
		SelectionReason: preference,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Pincode == "" {
		return fmt.Errorf("%w: pincode is required", ErrInvalidInput)
	}
	if len(req.ProductTypes) == 0 {
		return fmt.Errorf("%w: at least one product type is required", ErrInvalidInput)
	}
	return nil
}
