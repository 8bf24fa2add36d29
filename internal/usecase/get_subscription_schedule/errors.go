package get_subscription_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_subscription_schedule: invalid input data")

	// ErrSubscriptionNotFound возвращается, когда подписка не найдена
	ErrSubscriptionNotFound = errors.New("get_subscription_schedule: subscription not found")

	// ErrCalendarUnavailable возвращается, когда не удалось определить статус дня
	ErrCalendarUnavailable = errors.New("get_subscription_schedule: holiday calendar unavailable")

	// ErrNoEligibleDate возвращается, когда в горизонте поиска нет рабочего дня
	ErrNoEligibleDate = errors.New("get_subscription_schedule: no eligible delivery date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_subscription_schedule: internal error")
)
