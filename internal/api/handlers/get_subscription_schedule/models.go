package get_subscription_schedule

import (
	"strconv"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	getSubscriptionSchedule "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_subscription_schedule"
)

// SubscriptionScheduleResponse HTTP response model
type SubscriptionScheduleResponse struct {
	Subscription handlers.SubscriptionResponse        `json:"subscription"`
	Deliveries   []handlers.ProjectedDeliveryResponse `json:"deliveries"`
}

// ToUseCaseRequest формирует запрос use case, count опционален
func ToUseCaseRequest(subscriptionID int64, count string) (*getSubscriptionSchedule.Request, error) {
	req := &getSubscriptionSchedule.Request{SubscriptionID: subscriptionID}
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, err
		}
		req.Count = n
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSubscriptionSchedule.Response) *SubscriptionScheduleResponse {
	deliveries := make([]handlers.ProjectedDeliveryResponse, 0, len(resp.Deliveries))
	for _, d := range resp.Deliveries {
		deliveries = append(deliveries, handlers.NewProjectedDeliveryResponse(d))
	}
	return &SubscriptionScheduleResponse{
		Subscription: handlers.NewSubscriptionResponse(resp.Subscription),
		Deliveries:   deliveries,
	}
}
