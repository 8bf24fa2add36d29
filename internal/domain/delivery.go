package domain

import (
	"time"

	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

// DeliveryMode represents how an order is delivered
type DeliveryMode string

const (
	ModeImmediate DeliveryMode = "IMMEDIATE"
	ModeRecurring DeliveryMode = "RECURRING"
)

// IsValid returns true for a known mode
func (m DeliveryMode) IsValid() bool {
	return m == ModeImmediate || m == ModeRecurring
}

// Cadence recurrence interval of a subscription
type Cadence string

const (
	CadenceWeekly   Cadence = "WEEKLY"
	CadenceBiweekly Cadence = "BIWEEKLY"
)

// IsValid returns true for a known cadence
func (c Cadence) IsValid() bool {
	return c == CadenceWeekly || c == CadenceBiweekly
}

// Days returns the cadence length in days, 0 for an unknown cadence
func (c Cadence) Days() int {
	switch c {
	case CadenceWeekly:
		return WeeklyCadenceDays
	case CadenceBiweekly:
		return BiweeklyCadenceDays
	default:
		return 0
	}
}

// CutoffRule order acceptance rule for one day status
type CutoffRule struct {
	DayStatus     DayStatus
	Cutoff        types.TimeString // заказы принимаются строго до этого времени
	WindowStart   types.TimeString // начало окна доставки
	AcceptsOrders bool             // false для CLOSED
}

// DeliveryRequest input of the scheduling use case
type DeliveryRequest struct {
	RequestedAt      time.Time
	Mode             DeliveryMode
	PreferredWeekday *time.Weekday
	Cadence          *Cadence
}

// ScheduledDelivery computed delivery date and window. Never persisted by the scheduler.
type ScheduledDelivery struct {
	Date        CalendarDate
	WindowStart types.TimeString
	DayStatus   DayStatus
}

// StatusCategory category of the storefront countdown banner
type StatusCategory string

const (
	CategorySameDayCountdown StatusCategory = "SAME_DAY_COUNTDOWN"
	CategoryNextDay          StatusCategory = "NEXT_DAY"
	CategoryClosedToday      StatusCategory = "CLOSED_TODAY"
)

// StatusDescription storefront-facing description of the current delivery situation
type StatusDescription struct {
	Category         StatusCategory
	RemainingMinutes *int // только для SAME_DAY_COUNTDOWN
	Message          string
	Delivery         ScheduledDelivery
}

// ProjectedDelivery one projected subscription delivery
type ProjectedDelivery struct {
	Date      CalendarDate // фактическая дата доставки (с учетом сдвига)
	IdealDate CalendarDate // дата по расписанию подписки без сдвига
	DayStatus DayStatus
	Shifted   bool
}
