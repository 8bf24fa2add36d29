package schedule_delivery

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_delivery: invalid input data")

	// ErrCalendarUnavailable возвращается, когда не удалось определить статус дня
	ErrCalendarUnavailable = errors.New("schedule_delivery: holiday calendar unavailable")

	// ErrNoEligibleDate возвращается, когда в горизонте поиска нет рабочего дня
	ErrNoEligibleDate = errors.New("schedule_delivery: no eligible delivery date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_delivery: internal error")
)
