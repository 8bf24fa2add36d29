package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayStatus operating status of a calendar day
type DayStatus string

const (
	DayRegular      DayStatus = "REGULAR"
	DayReducedHours DayStatus = "REDUCED_HOURS" // канун праздника, короткий день
	DayClosed       DayStatus = "CLOSED"        // выходной или праздник
)

// IsValid returns true for a known status
func (s DayStatus) IsValid() bool {
	switch s {
	case DayRegular, DayReducedHours, DayClosed:
		return true
	default:
		return false
	}
}

// CalendarDate is a date in the store operating timezone, without time of day
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf converts an instant into the calendar date observed in loc
func DateOf(t time.Time, loc *time.Location) CalendarDate {
	y, m, d := t.In(loc).Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// NewCalendarDate creates a normalized date (day overflow rolls into the next month)
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate парсит дату формата YYYY-MM-DD
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDate{}, err
	}
	return DateOf(t, time.UTC), nil
}

func (d CalendarDate) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero returns true for an unset date
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays returns the date shifted by n days
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of week
func (d CalendarDate) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// DaysUntil returns the number of days from d to other (negative if other is earlier)
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.utc().Sub(d.utc()).Hours() / 24)
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.utc().Before(other.utc())
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.utc().After(other.utc())
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

// Midnight returns the start of the day in loc
func (d CalendarDate) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Time returns the date as a UTC midnight time.Time (for DATE columns)
func (d CalendarDate) Time() time.Time {
	return d.utc()
}

func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.utc().Format(DateFormat)
}

// MarshalText implements encoding.TextMarshaler
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *CalendarDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

// ParseWeekday парсит название дня недели (MONDAY..SUNDAY, регистр не важен)
func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return wd, nil
}

// WeekdayName returns the upper-case weekday name used in the API
func WeekdayName(wd time.Weekday) string {
	return strings.ToUpper(wd.String())
}

// IsValidWeekday checks that wd is within Sunday..Saturday
func IsValidWeekday(wd time.Weekday) bool {
	return wd >= time.Sunday && wd <= time.Saturday
}

// Holiday is a closing day reported by a holiday oracle
type Holiday struct {
	Date   CalendarDate
	Name   string
	Source string
}

// DayInfo classification of a single day with the reason behind it
type DayInfo struct {
	Date        CalendarDate
	Status      DayStatus
	HolidayName string // праздник в этот день или на следующий (для кануна)
	RestDay     bool
}
