package get_subscription_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SubscriptionAnchor, error)
}

// RecurrenceProjector интерфейс расчета доставок по подписке
type RecurrenceProjector interface {
	Project(ctx context.Context, anchor domain.SubscriptionAnchor, from time.Time, count int) ([]domain.ProjectedDelivery, error)
}

// HolidayCalendar интерфейс календаря магазина
type HolidayCalendar interface {
	GetStatus(ctx context.Context, date domain.CalendarDate) (domain.DayStatus, error)
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
