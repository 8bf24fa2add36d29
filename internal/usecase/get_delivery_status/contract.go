package get_delivery_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// DeliveryScheduler интерфейс планировщика срочных доставок
type DeliveryScheduler interface {
	Describe(ctx context.Context, now time.Time) (domain.StatusDescription, error)
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
