package recurrence

import "errors"

var (
	// ErrInvalidWeekday возвращается при некорректном дне недели подписки
	ErrInvalidWeekday = errors.New("recurrence: invalid preferred weekday")

	// ErrInvalidCadence возвращается при некорректной периодичности подписки
	ErrInvalidCadence = errors.New("recurrence: invalid cadence")

	// ErrInvalidCount возвращается при некорректном количестве дат для прогноза
	ErrInvalidCount = errors.New("recurrence: invalid projection count")

	// ErrInvalidConfig возвращается при некорректной конфигурации проектора
	ErrInvalidConfig = errors.New("recurrence: invalid configuration")
)
