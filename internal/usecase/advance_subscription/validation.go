package advance_subscription

import "fmt"

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.SubscriptionID <= 0 {
		return fmt.Errorf("%w: subscription id must be positive, got %d", ErrInvalidInput, req.SubscriptionID)
	}
	if req.FulfilledAt != nil && req.FulfilledAt.IsZero() {
		return fmt.Errorf("%w: fulfilledAt is zero", ErrInvalidInput)
	}
	return nil
}
