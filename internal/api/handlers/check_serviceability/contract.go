package check_serviceability

import (
	"context"

	checkServiceability "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/check_serviceability"
)

type CheckServiceabilityUseCase interface {
	Execute(ctx context.Context, req *checkServiceability.Request) (*checkServiceability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
