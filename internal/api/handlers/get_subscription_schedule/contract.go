package get_subscription_schedule

import (
	"context"

	getSubscriptionSchedule "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_subscription_schedule"
)

type GetSubscriptionScheduleUseCase interface {
	Execute(ctx context.Context, req *getSubscriptionSchedule.Request) (*getSubscriptionSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
