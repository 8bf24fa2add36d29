package staticcal

import (
	"context"

	"github.com/rickar/cal/v2"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// SourceName имя источника в логах и метриках
const SourceName = "static"

// Entry праздник из конфигурации
type Entry struct {
	Date domain.CalendarDate
	Name string
}

// Calendar источник праздников, заданных в конфигурации магазина
type Calendar struct {
	calendar *cal.BusinessCalendar
}

// NewCalendar строит календарь из списка дат
func NewCalendar(entries []Entry) *Calendar {
	calendar := cal.NewBusinessCalendar()
	for _, e := range entries {
		// праздник действует только в указанном году
		calendar.AddHoliday(&cal.Holiday{
			Name:      e.Name,
			Type:      cal.ObservancePublic,
			Month:     e.Date.Month,
			Day:       e.Date.Day,
			StartYear: e.Date.Year,
			EndYear:   e.Date.Year,
			Func:      cal.CalcDayOfMonth,
		})
	}
	return &Calendar{calendar: calendar}
}

// LookupHoliday реализует calendar.HolidayOracle
func (c *Calendar) LookupHoliday(_ context.Context, date domain.CalendarDate) (*domain.Holiday, error) {
	actual, _, h := c.calendar.IsHoliday(date.Time())
	if !actual || h == nil {
		return nil, nil
	}
	return &domain.Holiday{
		Date:   date,
		Name:   h.Name,
		Source: SourceName,
	}, nil
}
