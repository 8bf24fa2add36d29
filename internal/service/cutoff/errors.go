package cutoff

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации времени приема заказов
	ErrInvalidConfig = errors.New("cutoff: invalid cutoff configuration")

	// ErrUnknownStatus возвращается для неизвестного статуса дня
	ErrUnknownStatus = errors.New("cutoff: unknown day status")
)
