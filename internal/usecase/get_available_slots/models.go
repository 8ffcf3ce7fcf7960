package get_available_slots

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Pincode      string              // Пинкод клиента
	ProductTypes []string            // Типы товаров в заказе, непустой список
	DeliveryDate *time.Time          // Целевая дата доставки; nil = завтра (UTC)
	DeliveryType domain.DeliveryType // Тип доставки; пустое значение = next_day
}

// Response модель ответа со списком доступных слотов.
// Success=false с пустым списком и Message - штатный бизнес-исход
// "пинкод не обслуживается", а не ошибка.
type Response struct {
	Success        bool
	Message        string
	Pincode        string
	DeliveryDate   time.Time
	DeliveryType   domain.DeliveryType
	ProductType    string // Выбранный основной тип товара
	AvailableSlots []SlotOffer
}

// SlotOffer предложение слота: статичные поля конфигурации плюс живая
// доступность на дату
type SlotOffer struct {
	SlotID                string
	SlotName              string
	StartTime             types.TimeString
	EndTime               types.TimeString
	DeliveryCharge        decimal.Decimal
	AvailableCapacity     int
	MaxCapacity           int
	EstimatedDeliveryTime types.TimeString
	SpecialRules          domain.SpecialRules
	Area                  string
	City                  string
}
