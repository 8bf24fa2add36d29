package advance_subscription

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("advance_subscription: invalid input data")

	// ErrSubscriptionNotFound возвращается, когда подписка не найдена
	ErrSubscriptionNotFound = errors.New("advance_subscription: subscription not found")

	// ErrCalendarUnavailable возвращается, когда не удалось определить статус дня
	ErrCalendarUnavailable = errors.New("advance_subscription: holiday calendar unavailable")

	// ErrNoEligibleDate возвращается, когда в горизонте поиска нет рабочего дня
	ErrNoEligibleDate = errors.New("advance_subscription: no eligible delivery date")

	// ErrConflict возвращается, когда подписка одновременно обновляется другим запросом
	ErrConflict = errors.New("advance_subscription: concurrent update")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("advance_subscription: internal error")
)
