package get_calendar_days

import "github.com/m04kA/SMC-DeliveryService/internal/domain"

// Request модель запроса календаря
type Request struct {
	From *domain.CalendarDate // первый день, по умолчанию сегодня в часовом поясе магазина
	Days int                  // количество дней, 0 означает значение по умолчанию
}

// Response статусы дней по порядку
type Response struct {
	Days []domain.DayInfo
}
