package advance_subscription

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.SubscriptionAnchor, error)
	UpdateSchedule(ctx context.Context, anchor *domain.SubscriptionAnchor) error
	ListDue(ctx context.Context, before domain.CalendarDate, limit int) ([]*domain.SubscriptionAnchor, error)
}

// RecurrenceProjector интерфейс расчета доставок по подписке
type RecurrenceProjector interface {
	Advance(ctx context.Context, anchor domain.SubscriptionAnchor, from time.Time) (domain.SubscriptionAnchor, domain.ProjectedDelivery, error)
}

// HolidayCalendar интерфейс календаря магазина
type HolidayCalendar interface {
	GetStatus(ctx context.Context, date domain.CalendarDate) (domain.DayStatus, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SweepRecorder интерфейс для метрик периодического переноса
type SweepRecorder interface {
	AddSweepAdvanced(n int)
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
