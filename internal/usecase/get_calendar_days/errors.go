package get_calendar_days

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar_days: invalid input data")

	// ErrCalendarUnavailable возвращается, когда не удалось определить статус дня
	ErrCalendarUnavailable = errors.New("get_calendar_days: holiday calendar unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_days: internal error")
)
