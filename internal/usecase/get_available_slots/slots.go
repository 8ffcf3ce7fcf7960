package get_available_slots

import (
	"sort"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/types"
)

// buildOffer собирает предложение слота из статичных полей конфигурации и
// живого счетчика доступности
func buildOffer(cfg *domain.SlotConfiguration, slot domain.TimeSlot, avail *domain.SlotAvailability) (SlotOffer, error) {
	// Оценка времени доставки - середина окна слота, по суммарным минутам
	// с нормализацией (09:45-10:15 -> 10:00)
	estimated, err := types.Midpoint(slot.StartTime, slot.EndTime)
	if err != nil {
		return SlotOffer{}, err
	}

	return SlotOffer{
		SlotID:                slot.SlotID,
		SlotName:              slot.Name,
		StartTime:             slot.StartTime,
		EndTime:               slot.EndTime,
		DeliveryCharge:        slot.DeliveryCharge,
		AvailableCapacity:     avail.AvailableSlots,
		MaxCapacity:           avail.MaxCapacity,
		EstimatedDeliveryTime: estimated,
		SpecialRules:          cfg.SpecialRules,
		Area:                  cfg.Area,
		City:                  cfg.City,
	}, nil
}

// sortOffersByStartTime сортирует предложения по возрастанию времени начала.
// Строки "HH:MM" с ведущими нулями сравниваются лексикографически;
// стабильная сортировка сохраняет исходный порядок слотов с одинаковым
// временем начала.
func sortOffersByStartTime(offers []SlotOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].StartTime.IsBefore(offers[j].StartTime)
	})
}
