package get_subscription_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.SubscriptionID <= 0 {
		return fmt.Errorf("%w: subscription id must be positive, got %d", ErrInvalidInput, req.SubscriptionID)
	}
	if req.Count < 0 || req.Count > domain.MaxScheduleCount {
		return fmt.Errorf("%w: count must be within 1..%d, got %d", ErrInvalidInput, domain.MaxScheduleCount, req.Count)
	}
	return nil
}
