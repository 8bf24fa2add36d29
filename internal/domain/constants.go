package domain

import "github.com/m04kA/SMC-DeliveryService/pkg/types"

// Default configuration values
const (
	DefaultTimezone         = "Asia/Jerusalem"
	DefaultLookaheadDays    = 14
	DefaultRestDay          = "SATURDAY"
	DefaultRegularCutoff    = types.TimeString("18:00")
	DefaultReducedCutoff    = types.TimeString("12:00")
	DefaultWindowStart      = types.TimeString("09:00")
	DefaultScheduleCount    = 4
	DefaultCalendarDaysSpan = 14
)

// Business validation constants
const (
	MinLookaheadDays    = 1
	MaxLookaheadDays    = 62
	MaxScheduleCount    = 26 // полгода еженедельной доставки
	MaxCalendarDaysSpan = 62
)

// Cadence lengths in days
const (
	WeeklyCadenceDays   = 7
	BiweeklyCadenceDays = 14
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
