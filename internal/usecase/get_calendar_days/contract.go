package get_calendar_days

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// HolidayCalendar интерфейс календаря магазина
type HolidayCalendar interface {
	Range(ctx context.Context, from domain.CalendarDate, days int) ([]domain.DayInfo, error)
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
