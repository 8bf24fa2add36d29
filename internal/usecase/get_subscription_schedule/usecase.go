package get_subscription_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
	"github.com/m04kA/SMC-DeliveryService/internal/service/recurrence"
)

// UseCase use case для получения ближайших доставок по подписке
type UseCase struct {
	repo         SubscriptionRepository
	projector    RecurrenceProjector
	calendar     HolidayCalendar
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo SubscriptionRepository,
	projector RecurrenceProjector,
	cal HolidayCalendar,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		projector:    projector,
		calendar:     cal,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSubscriptionSchedule: validation failed: %v", err)
		return nil, err
	}

	count := req.Count
	if count == 0 {
		count = domain.DefaultScheduleCount
	}

	// 2. Получаем подписку
	anchor, err := uc.repo.GetByID(ctx, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			uc.logger.Warn("GetSubscriptionSchedule: subscription id=%d not found", req.SubscriptionID)
			return nil, ErrSubscriptionNotFound
		}
		uc.logger.Error("GetSubscriptionSchedule: failed to get subscription id=%d: %v", req.SubscriptionID, err)
		return nil, fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	today := domain.DateOf(now, uc.loc)

	deliveries := make([]domain.ProjectedDelivery, 0, count)
	from := now

	// 3. Уже назначенная доставка идет первой, дальше считаем от следующего дня
	if !anchor.NextDeliveryDate.IsZero() && !anchor.NextDeliveryDate.Before(today) {
		pending, err := uc.pendingDelivery(ctx, anchor)
		if err != nil {
			return nil, uc.mapError(req.SubscriptionID, err)
		}
		deliveries = append(deliveries, pending)
		from = anchor.NextDeliveryDate.AddDays(1).Midnight(uc.loc)
		count--
	}

	// 4. Следующие циклы
	if count > 0 {
		projected, err := uc.projector.Project(ctx, *anchor, from, count)
		if err != nil {
			return nil, uc.mapError(req.SubscriptionID, err)
		}
		deliveries = append(deliveries, projected...)
	}

	return &Response{
		Subscription: *anchor,
		Deliveries:   deliveries,
	}, nil
}

func (uc *UseCase) pendingDelivery(ctx context.Context, anchor *domain.SubscriptionAnchor) (domain.ProjectedDelivery, error) {
	status, err := uc.calendar.GetStatus(ctx, anchor.NextDeliveryDate)
	if err != nil {
		return domain.ProjectedDelivery{}, err
	}

	ideal := anchor.NextDeliveryDate
	if anchor.HasAnchor() {
		ideal = anchor.AnchorDate
	}

	return domain.ProjectedDelivery{
		Date:      anchor.NextDeliveryDate,
		IdealDate: ideal,
		DayStatus: status,
		Shifted:   !ideal.Equal(anchor.NextDeliveryDate),
	}, nil
}

func (uc *UseCase) mapError(id int64, err error) error {
	switch {
	case errors.Is(err, calendar.ErrCalendarUnavailable):
		uc.logger.Error("GetSubscriptionSchedule: subscription id=%d: calendar unavailable: %v", id, err)
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	case errors.Is(err, calendar.ErrNoEligibleDate):
		uc.logger.Warn("GetSubscriptionSchedule: subscription id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrNoEligibleDate, err)
	case errors.Is(err, recurrence.ErrInvalidWeekday), errors.Is(err, recurrence.ErrInvalidCadence):
		// в базе лежит некорректная подписка
		uc.logger.Error("GetSubscriptionSchedule: subscription id=%d is malformed: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	default:
		uc.logger.Error("GetSubscriptionSchedule: subscription id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
