package scheduler

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации планировщика
	ErrInvalidConfig = errors.New("scheduler: invalid configuration")
)
