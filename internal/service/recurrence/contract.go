package recurrence

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// HolidayCalendar классификатор дней с поиском ближайшего рабочего дня
type HolidayCalendar interface {
	GetStatus(ctx context.Context, date domain.CalendarDate) (domain.DayStatus, error)
	NextOpenDay(ctx context.Context, from domain.CalendarDate, lookahead int) (domain.CalendarDate, domain.DayStatus, error)
}

// CutoffPolicy правила приема заказов
type CutoffPolicy interface {
	GetRule(status domain.DayStatus) (domain.CutoffRule, error)
	AcceptsSameDay(rule domain.CutoffRule, now time.Time) bool
}
