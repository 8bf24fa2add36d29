package schedule_delivery

import (
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

// Request модель запроса на расчет даты доставки
type Request struct {
	Mode             string     // IMMEDIATE или RECURRING
	RequestedAt      *time.Time // момент заказа, по умолчанию текущее время
	PreferredWeekday *string    // день недели подписки (MONDAY..SUNDAY), только для RECURRING
	Cadence          *string    // WEEKLY или BIWEEKLY, только для RECURRING
}

// Response модель ответа с рассчитанной доставкой
type Response struct {
	Mode          domain.DeliveryMode
	ScheduledDate domain.CalendarDate  // дата доставки
	WindowStart   types.TimeString     // начало окна доставки
	DayStatus     domain.DayStatus     // статус дня доставки
	IdealDate     *domain.CalendarDate // дата по расписанию подписки (только RECURRING)
	Shifted       *bool                // дата сдвинута из-за закрытого дня (только RECURRING)
}
