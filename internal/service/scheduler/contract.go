package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// HolidayCalendar классификатор дней
type HolidayCalendar interface {
	GetStatus(ctx context.Context, date domain.CalendarDate) (domain.DayStatus, error)
}

// CutoffPolicy правила приема заказов
type CutoffPolicy interface {
	GetRule(status domain.DayStatus) (domain.CutoffRule, error)
	AcceptsSameDay(rule domain.CutoffRule, now time.Time) bool
	MinutesUntilCutoff(rule domain.CutoffRule, now time.Time) int
}
