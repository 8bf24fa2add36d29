package get_calendar_days

import (
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Days < 0 || req.Days > domain.MaxCalendarDaysSpan {
		return fmt.Errorf("%w: days must be within 1..%d, got %d", ErrInvalidInput, domain.MaxCalendarDaysSpan, req.Days)
	}
	if req.From != nil && req.From.IsZero() {
		return fmt.Errorf("%w: from is zero", ErrInvalidInput)
	}
	return nil
}
