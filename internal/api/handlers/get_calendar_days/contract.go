package get_calendar_days

import (
	"context"

	getCalendarDays "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_calendar_days"
)

type GetCalendarDaysUseCase interface {
	Execute(ctx context.Context, req *getCalendarDays.Request) (*getCalendarDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
