package auto_select_slot

import (
	"context"
	"time"

	getAvailableSlots "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/get_available_slots"
)

// SlotFinder интерфейс поиска доступных слотов на конкретную дату и тип
// доставки (реализуется use case получения доступных слотов)
type SlotFinder interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
