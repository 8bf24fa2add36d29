package get_calendar_days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
)

// UseCase use case для получения статусов дней (витрина подсвечивает закрытые и сокращенные дни)
type UseCase struct {
	calendar     HolidayCalendar
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cal HolidayCalendar, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		calendar:     cal,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		req = &Request{}
	}

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Значения по умолчанию
	from := domain.DateOf(uc.timeProvider.Now(), uc.loc)
	if req.From != nil {
		from = *req.From
	}
	days := req.Days
	if days == 0 {
		days = domain.DefaultCalendarDaysSpan
	}

	// 3. Классификация дней
	infos, err := uc.calendar.Range(ctx, from, days)
	if err != nil {
		if errors.Is(err, calendar.ErrCalendarUnavailable) {
			uc.logger.Error("GetCalendarDays: calendar unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		uc.logger.Error("GetCalendarDays: failed to classify days from %s: %v", from, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Days: infos}, nil
}
