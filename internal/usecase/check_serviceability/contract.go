package check_serviceability

import (
	"context"

	"github.com/freshkart/FK-DeliverySlotsService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигураций слотов
type ConfigRepository interface {
	ListByPincode(ctx context.Context, pincode string) ([]*domain.SlotConfiguration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
