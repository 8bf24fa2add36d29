package get_subscription_schedule

import "github.com/m04kA/SMC-DeliveryService/internal/domain"

// Request модель запроса расписания подписки
type Request struct {
	SubscriptionID int64
	Count          int // количество доставок, 0 означает значение по умолчанию
}

// Response подписка и ее ближайшие доставки
type Response struct {
	Subscription domain.SubscriptionAnchor
	Deliveries   []domain.ProjectedDelivery
}
