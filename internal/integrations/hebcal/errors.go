package hebcal

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hebcal client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Hebcal
	ErrInvalidResponse = errors.New("hebcal client: invalid response")
)
