package get_available_slots

import (
	"context"
	"time"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигураций слотов
type ConfigRepository interface {
	GetByPincodeAndProductType(ctx context.Context, pincode, productType string) (*domain.SlotConfiguration, error)
}

// AvailabilityRepository интерфейс репозитория счетчиков доступности
type AvailabilityRepository interface {
	GetBySlotKey(ctx context.Context, pincode, slotID string, date time.Time, deliveryType domain.DeliveryType) (*domain.SlotAvailability, error)
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
