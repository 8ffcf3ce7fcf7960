package bookings

import (
	"context"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID string) (*domain.SlotBooking, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.SlotBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
