package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
)

// Config параметры планировщика
type Config struct {
	Location      *time.Location // часовой пояс магазина
	LookaheadDays int            // сколько дней вперед искать рабочий день
}

// Scheduler рассчитывает ближайшую дату доставки для срочного заказа.
// Не хранит состояния и не запускает таймеров: витрина сама периодически вызывает Describe.
type Scheduler struct {
	calendar  HolidayCalendar
	policy    CutoffPolicy
	loc       *time.Location
	lookahead int
}

// NewScheduler создает планировщик
func NewScheduler(cal HolidayCalendar, policy CutoffPolicy, cfg Config) (*Scheduler, error) {
	if cfg.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidConfig)
	}
	if cfg.LookaheadDays < domain.MinLookaheadDays || cfg.LookaheadDays > domain.MaxLookaheadDays {
		return nil, fmt.Errorf("%w: lookahead must be within %d..%d days, got %d",
			ErrInvalidConfig, domain.MinLookaheadDays, domain.MaxLookaheadDays, cfg.LookaheadDays)
	}

	return &Scheduler{
		calendar:  cal,
		policy:    policy,
		loc:       cfg.Location,
		lookahead: cfg.LookaheadDays,
	}, nil
}

// ScheduleImmediate возвращает ближайшую допустимую дату и окно доставки для заказа, сделанного в момент now
func (s *Scheduler) ScheduleImmediate(ctx context.Context, now time.Time) (domain.ScheduledDelivery, error) {
	plan, err := s.plan(ctx, now)
	if err != nil {
		return domain.ScheduledDelivery{}, err
	}
	return plan.delivery, nil
}

type plan struct {
	local     time.Time
	today     domain.CalendarDate
	todayRule domain.CutoffRule
	delivery  domain.ScheduledDelivery
}

func (s *Scheduler) plan(ctx context.Context, now time.Time) (plan, error) {
	// 1. Приводим момент заказа к часовому поясу магазина
	local := now.In(s.loc)
	today := domain.DateOf(local, s.loc)

	result := plan{local: local, today: today}

	// 2. Идем по дням вперед, пока не найдем день, принимающий заказы
	for offset := 0; offset < s.lookahead; offset++ {
		day := today.AddDays(offset)

		status, err := s.calendar.GetStatus(ctx, day)
		if err != nil {
			return plan{}, err
		}

		rule, err := s.policy.GetRule(status)
		if err != nil {
			return plan{}, err
		}

		if offset == 0 {
			result.todayRule = rule
		}

		// 3. Закрытый день пропускаем независимо от времени
		if !rule.AcceptsOrders {
			continue
		}

		// 4. Сегодня доставляем только если заказ сделан строго до отсечки
		if offset == 0 && !s.policy.AcceptsSameDay(rule, local) {
			continue
		}

		result.delivery = domain.ScheduledDelivery{
			Date:        day,
			WindowStart: rule.WindowStart,
			DayStatus:   status,
		}
		return result, nil
	}

	// 5. Горизонт поиска исчерпан
	return plan{}, fmt.Errorf("%w: from %s, %d days checked", calendar.ErrNoEligibleDate, today, s.lookahead)
}

// Describe возвращает состояние для баннера обратного отсчета на витрине.
// Функция чистая: повторный вызов с тем же now дает тот же результат.
func (s *Scheduler) Describe(ctx context.Context, now time.Time) (domain.StatusDescription, error) {
	p, err := s.plan(ctx, now)
	if err != nil {
		return domain.StatusDescription{}, err
	}

	switch {
	case p.todayRule.DayStatus == domain.DayClosed:
		return domain.StatusDescription{
			Category: domain.CategoryClosedToday,
			Message:  fmt.Sprintf("We are closed today. Orders placed now will be delivered on %s from %s.", formatDate(p.delivery.Date), p.delivery.WindowStart),
			Delivery: p.delivery,
		}, nil

	case p.delivery.Date.Equal(p.today):
		remaining := s.policy.MinutesUntilCutoff(p.todayRule, p.local)
		return domain.StatusDescription{
			Category:         domain.CategorySameDayCountdown,
			RemainingMinutes: &remaining,
			Message:          fmt.Sprintf("Order within %s for same-day delivery.", formatMinutes(remaining)),
			Delivery:         p.delivery,
		}, nil

	default:
		return domain.StatusDescription{
			Category: domain.CategoryNextDay,
			Message:  fmt.Sprintf("Orders placed now will be delivered on %s from %s.", formatDate(p.delivery.Date), p.delivery.WindowStart),
			Delivery: p.delivery,
		}, nil
	}
}

func formatDate(d domain.CalendarDate) string {
	return d.Time().Format("Monday, 2 January")
}

func formatMinutes(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d h", h)
	default:
		return fmt.Sprintf("%d h %d min", h, m)
	}
}
