package get_delivery_status

import "errors"

var (
	// ErrCalendarUnavailable возвращается, когда не удалось определить статус дня
	ErrCalendarUnavailable = errors.New("get_delivery_status: holiday calendar unavailable")

	// ErrNoEligibleDate возвращается, когда в горизонте поиска нет рабочего дня
	ErrNoEligibleDate = errors.New("get_delivery_status: no eligible delivery date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_delivery_status: internal error")
)
