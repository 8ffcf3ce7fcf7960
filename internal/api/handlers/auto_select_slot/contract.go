package auto_select_slot

import (
	"context"

	autoSelectSlot "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/auto_select_slot"
)

type AutoSelectSlotUseCase interface {
	Execute(ctx context.Context, req *autoSelectSlot.Request) (*autoSelectSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
