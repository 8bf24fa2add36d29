package schedule_delivery

import (
	"context"

	scheduleDelivery "github.com/m04kA/SMC-DeliveryService/internal/usecase/schedule_delivery"
)

type ScheduleDeliveryUseCase interface {
	Execute(ctx context.Context, req *scheduleDelivery.Request) (*scheduleDelivery.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
