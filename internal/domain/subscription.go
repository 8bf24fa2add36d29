package domain

import "time"

// ShiftPolicy decides what a holiday shift does to the subscription anchor
type ShiftPolicy string

const (
	// ShiftOneCycle moves only the affected delivery, the weekday sequence is kept
	ShiftOneCycle ShiftPolicy = "one_cycle"
	// ShiftPermanent re-anchors the subscription on the shifted date
	ShiftPermanent ShiftPolicy = "permanent"
)

// IsValid returns true for a known policy
func (p ShiftPolicy) IsValid() bool {
	return p == ShiftOneCycle || p == ShiftPermanent
}

// SubscriptionAnchor recurring delivery state owned by a subscription record
type SubscriptionAnchor struct {
	ID               int64
	PreferredWeekday time.Weekday
	Cadence          Cadence
	AnchorDate       CalendarDate // идеальная (несдвинутая) дата последнего цикла, zero для новой подписки
	NextDeliveryDate CalendarDate
	UpdatedAt        time.Time
}

// HasAnchor returns true when the subscription already has a cadence base
func (a *SubscriptionAnchor) HasAnchor() bool {
	return !a.AnchorDate.IsZero() && a.AnchorDate.Weekday() == a.PreferredWeekday
}

// IsDue returns true when the next delivery date is strictly before today
func (a *SubscriptionAnchor) IsDue(today CalendarDate) bool {
	return !a.NextDeliveryDate.IsZero() && a.NextDeliveryDate.Before(today)
}
