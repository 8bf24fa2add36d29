package cronjobs

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	advanceSubscription "github.com/m04kA/SMC-DeliveryService/internal/usecase/advance_subscription"
)

// SubscriptionSweeper переносит просроченные подписки на следующий цикл
type SubscriptionSweeper interface {
	SweepDue(ctx context.Context, today domain.CalendarDate) (*advanceSubscription.SweepResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
