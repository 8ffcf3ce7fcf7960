package auto_select_slot

import (
	"time"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	getAvailableSlots "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/get_available_slots"
)

// Preference политика выбора слота внутри первого успешного дня
type Preference string

const (
	PreferenceFastest  Preference = "fastest"  // самый ранний слот
	PreferenceCheapest Preference = "cheapest" // минимальная стоимость доставки
	PreferenceMorning  Preference = "morning"  // утренний слот (до 12:00), иначе самый ранний
)

// Request модель запроса на автоматический выбор слота
type Request struct {
	Pincode      string
	ProductTypes []string
	Preference   Preference // Неизвестное значение трактуется как fastest
}

// Response модель ответа с выбранным слотом.
// Success=false с Message - штатный исход "нет слотов в горизонте поиска".
type Response struct {
	Success          bool
	Message          string
	SelectedSlot     *getAvailableSlots.SlotOffer
	DeliveryDate     time.Time
	DeliveryType     domain.DeliveryType
	SelectionReason  Preference
	AlternativeSlots []getAvailableSlots.SlotOffer
}
