package schedule_delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
	"github.com/m04kA/SMC-DeliveryService/internal/service/recurrence"
	"github.com/m04kA/SMC-DeliveryService/pkg/ptr"
)

// Исходы расчета для метрик
const (
	outcomeOK                  = "ok"
	outcomeInvalidInput        = "invalid_input"
	outcomeCalendarUnavailable = "calendar_unavailable"
	outcomeNoEligibleDate      = "no_eligible_date"
	outcomeInternal            = "internal"
)

// UseCase use case для расчета даты доставки заказа
type UseCase struct {
	scheduler    DeliveryScheduler
	projector    RecurrenceProjector
	policy       CutoffPolicy
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduler DeliveryScheduler,
	projector RecurrenceProjector,
	policy CutoffPolicy,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduler:    scheduler,
		projector:    projector,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчета даты доставки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	delivery, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("ScheduleDelivery: validation failed: %v", err)
		uc.observe(modeOf(req), outcomeInvalidInput)
		return nil, err
	}

	uc.logger.Info("ScheduleDelivery: mode=%s, requested_at=%s", delivery.Mode, delivery.RequestedAt.Format(time.RFC3339))

	// 2. Расчет по режиму
	var resp *Response
	switch delivery.Mode {
	case domain.ModeImmediate:
		resp, err = uc.scheduleImmediate(ctx, delivery)
	case domain.ModeRecurring:
		resp, err = uc.scheduleRecurring(ctx, delivery)
	}

	// 3. Приводим ошибки сервисов к ошибкам use case
	if err != nil {
		mapped, outcome := mapError(err)
		if outcome == outcomeInternal || outcome == outcomeCalendarUnavailable {
			uc.logger.Error("ScheduleDelivery: mode=%s failed: %v", delivery.Mode, err)
		} else {
			uc.logger.Warn("ScheduleDelivery: mode=%s rejected: %v", delivery.Mode, err)
		}
		uc.observe(string(delivery.Mode), outcome)
		return nil, mapped
	}

	uc.logger.Info("ScheduleDelivery: mode=%s scheduled on %s from %s (%s)",
		delivery.Mode, resp.ScheduledDate, resp.WindowStart, resp.DayStatus)
	uc.observe(string(delivery.Mode), outcomeOK)

	return resp, nil
}

func (uc *UseCase) scheduleImmediate(ctx context.Context, req domain.DeliveryRequest) (*Response, error) {
	scheduled, err := uc.scheduler.ScheduleImmediate(ctx, req.RequestedAt)
	if err != nil {
		return nil, err
	}

	return &Response{
		Mode:          domain.ModeImmediate,
		ScheduledDate: scheduled.Date,
		WindowStart:   scheduled.WindowStart,
		DayStatus:     scheduled.DayStatus,
	}, nil
}

func (uc *UseCase) scheduleRecurring(ctx context.Context, req domain.DeliveryRequest) (*Response, error) {
	// Новая подписка: якоря еще нет, отсчет идет от момента заказа
	anchor := domain.SubscriptionAnchor{
		PreferredWeekday: *req.PreferredWeekday,
		Cadence:          *req.Cadence,
	}

	occurrence, err := uc.projector.NextOccurrence(ctx, anchor, req.RequestedAt)
	if err != nil {
		return nil, err
	}

	rule, err := uc.policy.GetRule(occurrence.DayStatus)
	if err != nil {
		return nil, err
	}

	return &Response{
		Mode:          domain.ModeRecurring,
		ScheduledDate: occurrence.Date,
		WindowStart:   rule.WindowStart,
		DayStatus:     occurrence.DayStatus,
		IdealDate:     ptr.Ptr(occurrence.IdealDate),
		Shifted:       ptr.Ptr(occurrence.Shifted),
	}, nil
}

func (uc *UseCase) observe(mode, outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveSchedule(mode, outcome)
	}
}

func mapError(err error) (error, string) {
	switch {
	case errors.Is(err, calendar.ErrCalendarUnavailable):
		return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err), outcomeCalendarUnavailable
	case errors.Is(err, calendar.ErrNoEligibleDate):
		return fmt.Errorf("%w: %v", ErrNoEligibleDate, err), outcomeNoEligibleDate
	case errors.Is(err, recurrence.ErrInvalidWeekday), errors.Is(err, recurrence.ErrInvalidCadence):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err), outcomeInvalidInput
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err), outcomeInternal
	}
}

func modeOf(req *Request) string {
	if req == nil || !domain.DeliveryMode(req.Mode).IsValid() {
		return "unknown"
	}
	return req.Mode
}
