package fulfill_subscription

import (
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	advanceSubscription "github.com/m04kA/SMC-DeliveryService/internal/usecase/advance_subscription"
)

// FulfillSubscriptionRequest HTTP request model, тело запроса может отсутствовать
type FulfillSubscriptionRequest struct {
	FulfilledAt *string `json:"fulfilledAt,omitempty"` // RFC3339
}

// FulfillSubscriptionResponse HTTP response model
type FulfillSubscriptionResponse struct {
	Subscription     handlers.SubscriptionResponse      `json:"subscription"`
	Next             handlers.ProjectedDeliveryResponse `json:"next"`
	AlreadyFulfilled bool                               `json:"alreadyFulfilled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FulfillSubscriptionRequest) ToUseCaseRequest(subscriptionID int64) (*advanceSubscription.Request, error) {
	req := &advanceSubscription.Request{SubscriptionID: subscriptionID}

	if r.FulfilledAt != nil {
		fulfilledAt, err := time.Parse(time.RFC3339, *r.FulfilledAt)
		if err != nil {
			return nil, err
		}
		req.FulfilledAt = &fulfilledAt
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *advanceSubscription.Response) *FulfillSubscriptionResponse {
	return &FulfillSubscriptionResponse{
		Subscription:     handlers.NewSubscriptionResponse(resp.Subscription),
		Next:             handlers.NewProjectedDeliveryResponse(resp.Next),
		AlreadyFulfilled: resp.AlreadyFulfilled,
	}
}
