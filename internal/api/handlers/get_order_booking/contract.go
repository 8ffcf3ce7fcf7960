package get_order_booking

import (
	"context"

	"github.com/freshkart/FK-DeliverySlotsService/internal/service/bookings/models"
)

type BookingService interface {
	GetByOrderID(ctx context.Context, orderID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
