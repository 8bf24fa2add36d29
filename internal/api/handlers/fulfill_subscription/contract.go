package fulfill_subscription

import (
	"context"

	advanceSubscription "github.com/m04kA/SMC-DeliveryService/internal/usecase/advance_subscription"
)

type AdvanceSubscriptionUseCase interface {
	Execute(ctx context.Context, req *advanceSubscription.Request) (*advanceSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
