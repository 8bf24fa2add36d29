package calendar

import "errors"

var (
	// ErrCalendarUnavailable возвращается, когда источник праздников не смог классифицировать дату
	ErrCalendarUnavailable = errors.New("calendar: holiday calendar unavailable")

	// ErrNoEligibleDate возвращается, когда в пределах горизонта поиска нет рабочего дня
	ErrNoEligibleDate = errors.New("calendar: no eligible delivery date within lookahead")

	// ErrInvalidLookahead возвращается при некорректном горизонте поиска
	ErrInvalidLookahead = errors.New("calendar: invalid lookahead")
)
