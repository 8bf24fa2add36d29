package calendar

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// HolidayOracle источник данных о праздниках.
// Возвращает nil, если в указанную дату нет праздника, закрывающего магазин.
type HolidayOracle interface {
	LookupHoliday(ctx context.Context, date domain.CalendarDate) (*domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
