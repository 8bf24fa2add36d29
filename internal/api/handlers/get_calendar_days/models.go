package get_calendar_days

import (
	"strconv"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	getCalendarDays "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_calendar_days"
)

// DayResponse HTTP модель одного дня
type DayResponse struct {
	Date        string  `json:"date"`
	Weekday     string  `json:"weekday"`
	Status      string  `json:"status"`
	HolidayName *string `json:"holidayName,omitempty"`
	RestDay     bool    `json:"restDay"`
}

// CalendarDaysResponse HTTP response model
type CalendarDaysResponse struct {
	Days []DayResponse `json:"days"`
}

// ToUseCaseRequest формирует запрос use case из query параметров from (YYYY-MM-DD) и days
func ToUseCaseRequest(from, days string) (*getCalendarDays.Request, error) {
	req := &getCalendarDays.Request{}

	if from != "" {
		date, err := domain.ParseCalendarDate(from)
		if err != nil {
			return nil, err
		}
		req.From = &date
	}

	if days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			return nil, err
		}
		req.Days = n
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarDays.Response) *CalendarDaysResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		day := DayResponse{
			Date:    d.Date.String(),
			Weekday: domain.WeekdayName(d.Date.Weekday()),
			Status:  string(d.Status),
			RestDay: d.RestDay,
		}
		if d.HolidayName != "" {
			name := d.HolidayName
			day.HolidayName = &name
		}
		days = append(days, day)
	}
	return &CalendarDaysResponse{Days: days}
}
