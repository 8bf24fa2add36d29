package advance_subscription

import (
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Config параметры use case
type Config struct {
	Location  *time.Location // часовой пояс магазина
	BatchSize int            // сколько подписок обрабатывать за один проход
}

// Request модель запроса о выполненной доставке
type Request struct {
	SubscriptionID int64
	FulfilledAt    *time.Time // момент выполнения, по умолчанию текущее время
}

// Response обновленная подписка и ее следующая доставка
type Response struct {
	Subscription     domain.SubscriptionAnchor
	Next             domain.ProjectedDelivery
	AlreadyFulfilled bool // доставка уже была учтена, подписка не изменилась
}

// SweepResult итог периодического переноса
type SweepResult struct {
	Checked  int // найдено просроченных подписок
	Advanced int // перенесено на следующий цикл
	Failed   int // не удалось перенести (повтор на следующем проходе)
}
