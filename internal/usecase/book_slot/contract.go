package book_slot

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.SlotBooking) (*domain.SlotBooking, error)
}

// AvailabilityRepository интерфейс репозитория счетчиков доступности
type AvailabilityRepository interface {
	ReserveCapacity(ctx context.Context, pincode, slotID string, date time.Time, deliveryType domain.DeliveryType, weight decimal.Decimal) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
