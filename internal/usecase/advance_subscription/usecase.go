package advance_subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
)

const defaultBatchSize = 500

// UseCase use case для перевода подписки на следующий цикл доставки
type UseCase struct {
	repo         SubscriptionRepository
	projector    RecurrenceProjector
	calendar     HolidayCalendar
	txManager    TransactionManager
	metrics      SweepRecorder
	loc          *time.Location
	batchSize    int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo SubscriptionRepository,
	projector RecurrenceProjector,
	cal HolidayCalendar,
	txManager TransactionManager,
	metrics SweepRecorder,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &UseCase{
		repo:         repo,
		projector:    projector,
		calendar:     cal,
		txManager:    txManager,
		metrics:      metrics,
		loc:          cfg.Location,
		batchSize:    cfg.BatchSize,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отмечает доставку по подписке выполненной и рассчитывает следующую.
// Использует сериализуемую транзакцию, чтобы параллельные вызовы не сдвинули цикл дважды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdvanceSubscription: validation failed: %v", err)
		return nil, err
	}

	// 2. Момент выполнения
	fulfilledAt := uc.timeProvider.Now()
	if req.FulfilledAt != nil {
		fulfilledAt = *req.FulfilledAt
	}

	uc.logger.Info("AdvanceSubscription: subscription=%d, fulfilled_at=%s", req.SubscriptionID, fulfilledAt.Format(time.RFC3339))

	// 3. Перенос в транзакции
	resp, err := uc.advance(ctx, req.SubscriptionID, fulfilledAt, false)
	if err != nil {
		return nil, err
	}

	if resp.AlreadyFulfilled {
		uc.logger.Info("AdvanceSubscription: subscription=%d already advanced, pending delivery on %s",
			req.SubscriptionID, resp.Next.Date)
		return resp, nil
	}

	uc.logger.Info("AdvanceSubscription: subscription=%d next delivery on %s (ideal %s, shifted=%t)",
		req.SubscriptionID, resp.Next.Date, resp.Next.IdealDate, resp.Next.Shifted)

	return resp, nil
}

// SweepDue переносит на следующий цикл подписки, дата доставки которых уже прошла.
// За один вызов обрабатывается не больше BatchSize подписок, ошибки отдельных подписок не прерывают проход
func (uc *UseCase) SweepDue(ctx context.Context, today domain.CalendarDate) (*SweepResult, error) {
	// 1. Просроченные подписки
	due, err := uc.repo.ListDue(ctx, today, uc.batchSize)
	if err != nil {
		uc.logger.Error("SweepDue: failed to list due subscriptions: %v", err)
		return nil, fmt.Errorf("%w: failed to list due subscriptions: %v", ErrInternal, err)
	}

	result := &SweepResult{Checked: len(due)}
	from := today.Midnight(uc.loc)

	// 2. Каждую подписку переносим в отдельной транзакции
	for _, anchor := range due {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("SweepDue: interrupted after %d subscriptions: %v", result.Advanced+result.Failed, err)
			break
		}

		if _, err := uc.advance(ctx, anchor.ID, from, true); err != nil {
			uc.logger.Warn("SweepDue: subscription=%d not advanced: %v", anchor.ID, err)
			result.Failed++
			continue
		}
		result.Advanced++
	}

	if uc.metrics != nil {
		uc.metrics.AddSweepAdvanced(result.Advanced)
	}

	if len(due) == uc.batchSize {
		uc.logger.Warn("SweepDue: batch limit %d reached, remaining subscriptions will be processed on the next run", uc.batchSize)
	}

	uc.logger.Info("SweepDue: today=%s, checked=%d, advanced=%d, failed=%d",
		today, result.Checked, result.Advanced, result.Failed)

	return result, nil
}

func (uc *UseCase) advance(ctx context.Context, id int64, from time.Time, onlyDue bool) (*Response, error) {
	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем подписку
		anchor, err := uc.repo.GetForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
				uc.logger.Warn("AdvanceSubscription: subscription id=%d not found", id)
				return ErrSubscriptionNotFound
			}
			uc.logger.Error("AdvanceSubscription: failed to get subscription id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
		}

		// 2. Подписку уже перенес параллельный запрос
		if onlyDue && !anchor.IsDue(domain.DateOf(from, uc.loc)) {
			result = &Response{Subscription: *anchor}
			return nil
		}

		// 3. Повторное подтверждение: доставка, к которой относится fulfilledAt, уже учтена
		if !onlyDue && anchor.NextDeliveryDate.After(domain.DateOf(from, uc.loc)) {
			pending, err := uc.pendingDelivery(txCtx, *anchor)
			if err != nil {
				return err
			}
			result = &Response{Subscription: *anchor, Next: pending, AlreadyFulfilled: true}
			return nil
		}

		// 4. Следующий цикл считаем не раньше дня, следующего за текущей доставкой
		effectiveFrom := from
		if !anchor.NextDeliveryDate.IsZero() {
			nextDay := anchor.NextDeliveryDate.AddDays(1).Midnight(uc.loc)
			if effectiveFrom.Before(nextDay) {
				effectiveFrom = nextDay
			}
		}

		next, occurrence, err := uc.projector.Advance(txCtx, *anchor, effectiveFrom)
		if err != nil {
			return mapProjectorError(err)
		}

		// 5. Сохраняем якорь
		if err := uc.repo.UpdateSchedule(txCtx, &next); err != nil {
			if errors.Is(err, subscriptionRepo.ErrConcurrentUpdate) {
				return fmt.Errorf("%w: %v", ErrConflict, err)
			}
			if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
				return ErrSubscriptionNotFound
			}
			uc.logger.Error("AdvanceSubscription: failed to update subscription id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to update subscription: %v", ErrInternal, err)
		}

		result = &Response{Subscription: next, Next: occurrence}
		return nil
	})

	if err != nil {
		return nil, classify(err)
	}

	return result, nil
}

// pendingDelivery текущая запланированная доставка подписки
func (uc *UseCase) pendingDelivery(ctx context.Context, anchor domain.SubscriptionAnchor) (domain.ProjectedDelivery, error) {
	status, err := uc.calendar.GetStatus(ctx, anchor.NextDeliveryDate)
	if err != nil {
		return domain.ProjectedDelivery{}, mapProjectorError(err)
	}

	ideal := anchor.AnchorDate
	if ideal.IsZero() {
		ideal = anchor.NextDeliveryDate
	}

	return domain.ProjectedDelivery{
		Date:      anchor.NextDeliveryDate,
		IdealDate: ideal,
		DayStatus: status,
		Shifted:   !ideal.Equal(anchor.NextDeliveryDate),
	}, nil
}

func mapProjectorError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrCalendarUnavailable):
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	case errors.Is(err, calendar.ErrNoEligibleDate):
		return fmt.Errorf("%w: %v", ErrNoEligibleDate, err)
	default:
		return fmt.Errorf("%w: failed to project next cycle: %v", ErrInternal, err)
	}
}

// classify оставляет ошибки use case как есть, остальные (begin/commit) считает внутренними
func classify(err error) error {
	for _, known := range []error{
		ErrSubscriptionNotFound,
		ErrCalendarUnavailable,
		ErrNoEligibleDate,
		ErrConflict,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
