package schedule_delivery

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// DeliveryScheduler интерфейс планировщика срочных доставок
type DeliveryScheduler interface {
	ScheduleImmediate(ctx context.Context, now time.Time) (domain.ScheduledDelivery, error)
}

// RecurrenceProjector интерфейс расчета доставок по подписке
type RecurrenceProjector interface {
	NextOccurrence(ctx context.Context, anchor domain.SubscriptionAnchor, from time.Time) (domain.ProjectedDelivery, error)
}

// CutoffPolicy интерфейс правил приема заказов
type CutoffPolicy interface {
	GetRule(status domain.DayStatus) (domain.CutoffRule, error)
}

// MetricsRecorder интерфейс для метрик расчета доставок
type MetricsRecorder interface {
	ObserveSchedule(mode, outcome string)
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
