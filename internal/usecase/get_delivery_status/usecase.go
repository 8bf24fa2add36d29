package get_delivery_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
)

// UseCase use case для получения состояния доставки на витрине.
// Витрина опрашивает его периодически, собственных таймеров нет.
type UseCase struct {
	scheduler    DeliveryScheduler
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduler DeliveryScheduler, logger Logger) *UseCase {
	return &UseCase{
		scheduler:    scheduler,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()
	if req != nil && req.At != nil {
		now = *req.At
	}

	status, err := uc.scheduler.Describe(ctx, now)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrCalendarUnavailable):
			uc.logger.Error("GetDeliveryStatus: calendar unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		case errors.Is(err, calendar.ErrNoEligibleDate):
			uc.logger.Warn("GetDeliveryStatus: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrNoEligibleDate, err)
		default:
			uc.logger.Error("GetDeliveryStatus: failed to describe status: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return &Response{Status: status}, nil
}
