package get_delivery_status

import (
	"context"

	getDeliveryStatus "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_status"
)

type GetDeliveryStatusUseCase interface {
	Execute(ctx context.Context, req *getDeliveryStatus.Request) (*getDeliveryStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
