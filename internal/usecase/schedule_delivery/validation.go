package schedule_delivery

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// validateRequest проверяет запрос и приводит его к доменной модели.
// Выполняется до любых вычислений с датами
func validateRequest(req *Request, now time.Time) (domain.DeliveryRequest, error) {
	if req == nil {
		return domain.DeliveryRequest{}, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	mode := domain.DeliveryMode(req.Mode)
	if !mode.IsValid() {
		return domain.DeliveryRequest{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	result := domain.DeliveryRequest{
		Mode:        mode,
		RequestedAt: now,
	}
	if req.RequestedAt != nil {
		if req.RequestedAt.IsZero() {
			return domain.DeliveryRequest{}, fmt.Errorf("%w: requestedAt is zero", ErrInvalidInput)
		}
		result.RequestedAt = *req.RequestedAt
	}

	if req.PreferredWeekday != nil {
		weekday, err := domain.ParseWeekday(*req.PreferredWeekday)
		if err != nil {
			return domain.DeliveryRequest{}, fmt.Errorf("%w: preferredWeekday: %v", ErrInvalidInput, err)
		}
		result.PreferredWeekday = &weekday
	}

	if req.Cadence != nil {
		cadence := domain.Cadence(*req.Cadence)
		if !cadence.IsValid() {
			return domain.DeliveryRequest{}, fmt.Errorf("%w: unknown cadence %q", ErrInvalidInput, *req.Cadence)
		}
		result.Cadence = &cadence
	}

	if mode == domain.ModeRecurring {
		if result.PreferredWeekday == nil {
			return domain.DeliveryRequest{}, fmt.Errorf("%w: preferredWeekday is required for %s", ErrInvalidInput, mode)
		}
		if result.Cadence == nil {
			return domain.DeliveryRequest{}, fmt.Errorf("%w: cadence is required for %s", ErrInvalidInput, mode)
		}
	}

	return result, nil
}
