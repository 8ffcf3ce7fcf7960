package book_slot

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/types"
)

// SelectedSlot выбранный слот, как его вернул поиск или автоподбор
type SelectedSlot struct {
	SlotID                string
	SlotName              string
	StartTime             types.TimeString
	EndTime               types.TimeString
	DeliveryCharge        decimal.Decimal
	EstimatedDeliveryTime types.TimeString
	DeliveryDate          time.Time
	DeliveryType          domain.DeliveryType
	Area                  string
	City                  string
}

// Request модель запроса на бронирование слота
type Request struct {
	OrderID         string
	CustomerID      string
	CustomerAddress domain.Address
	CustomerPhone   string
	Products        []domain.OrderLine
	SelectedSlot    SelectedSlot
}

// DeliveryDetails детали доставки для подтверждения клиенту
type DeliveryDetails struct {
	SlotName          string
	DeliveryDate      time.Time
	TimeRange         string // "HH:MM - HH:MM"
	EstimatedDelivery types.TimeString
	DeliveryCharge    decimal.Decimal
	Area              string
	City              string
}

// Response модель ответа с подтверждением бронирования
type Response struct {
	Success          bool
	BookingID        string
	ConfirmationCode string
	TotalWeight      decimal.Decimal
	DeliveryDetails  DeliveryDetails
	Message          string
}
