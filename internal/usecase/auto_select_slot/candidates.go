package auto_select_slot

import (
	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	getAvailableSlots "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/get_available_slots"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/types"
)

// morningCutoff слоты с началом строго раньше этого времени считаются утренними
const morningCutoff = types.TimeString("12:00")

// candidate одна пара (смещение даты, тип доставки) в пространстве поиска
type candidate struct {
	daysAhead    int
	deliveryType domain.DeliveryType
}

// searchOrder упорядоченное пространство поиска: ближайшие даты раньше
// дальних, для завтрашнего дня сперва same_day, дальше next_day/scheduled.
// Побеждает ПЕРВАЯ пара с непустым списком слотов - жадная политика
// "ближайшая дата важнее лучшего слота", слоты разных дат не сравниваются.
var searchOrder = []candidate{
	{daysAhead: 1, deliveryType: domain.DeliverySameDay},
	{daysAhead: 1, deliveryType: domain.DeliveryNextDay},
	{daysAhead: 2, deliveryType: domain.DeliveryNextDay},
	{daysAhead: 2, deliveryType: domain.DeliveryScheduled},
	{daysAhead: 3, deliveryType: domain.DeliveryNextDay},
	{daysAhead: 3, deliveryType: domain.DeliveryScheduled},
}

// pickByPreference выбирает слот из непустого, отсортированного по времени
// начала списка предложений
func pickByPreference(offers []getAvailableSlots.SlotOffer, pref Preference) getAvailableSlots.SlotOffer {
	switch pref {
	case PreferenceCheapest:
		// Минимальная стоимость; при равенстве - первое вхождение
		cheapest := offers[0]
		for _, offer := range offers[1:] {
			if offer.DeliveryCharge.LessThan(cheapest.DeliveryCharge) {
				cheapest = offer
			}
		}
		return cheapest

	case PreferenceMorning:
		for _, offer := range offers {
			if offer.StartTime.IsBefore(morningCutoff) {
				return offer
			}
		}
		// Утренних нет - самый ранний из всех
		return offers[0]

	default:
		// fastest и любое неизвестное значение - самый ранний слот
		return offers[0]
	}
}
