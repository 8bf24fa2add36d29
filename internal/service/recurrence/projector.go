package recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Config параметры проектора подписок
type Config struct {
	Location      *time.Location
	LookaheadDays int
	ShiftPolicy   domain.ShiftPolicy
}

// Projector рассчитывает даты доставок по подписке.
// Периодичность отсчитывается от идеальной последовательности дней недели,
// а не от сдвинутых праздниками дат (при политике one_cycle).
type Projector struct {
	calendar    HolidayCalendar
	policy      CutoffPolicy
	loc         *time.Location
	lookahead   int
	shiftPolicy domain.ShiftPolicy
}

// NewProjector создает проектор
func NewProjector(cal HolidayCalendar, policy CutoffPolicy, cfg Config) (*Projector, error) {
	if cfg.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidConfig)
	}
	if cfg.LookaheadDays < domain.MinLookaheadDays || cfg.LookaheadDays > domain.MaxLookaheadDays {
		return nil, fmt.Errorf("%w: lookahead must be within %d..%d days, got %d",
			ErrInvalidConfig, domain.MinLookaheadDays, domain.MaxLookaheadDays, cfg.LookaheadDays)
	}
	if cfg.ShiftPolicy == "" {
		cfg.ShiftPolicy = domain.ShiftOneCycle
	}
	if !cfg.ShiftPolicy.IsValid() {
		return nil, fmt.Errorf("%w: unknown shift policy %q", ErrInvalidConfig, cfg.ShiftPolicy)
	}

	return &Projector{
		calendar:    cal,
		policy:      policy,
		loc:         cfg.Location,
		lookahead:   cfg.LookaheadDays,
		shiftPolicy: cfg.ShiftPolicy,
	}, nil
}

// ShiftPolicy возвращает действующую политику сдвига
func (p *Projector) ShiftPolicy() domain.ShiftPolicy {
	return p.shiftPolicy
}

// NextOccurrence возвращает следующую доставку по подписке начиная с момента from
func (p *Projector) NextOccurrence(ctx context.Context, anchor domain.SubscriptionAnchor, from time.Time) (domain.ProjectedDelivery, error) {
	if err := validateAnchor(anchor); err != nil {
		return domain.ProjectedDelivery{}, err
	}

	local := from.In(p.loc)
	fromDate := domain.DateOf(local, p.loc)

	// 1. Первая дата не раньше from с нужным днем недели
	offset := (int(anchor.PreferredWeekday) - int(fromDate.Weekday()) + 7) % 7
	candidate := fromDate.AddDays(offset)

	// 2. Сегодняшний день оставляем, только если заказ успевает до отсечки
	if offset == 0 {
		accepted, err := p.acceptsSameDay(ctx, candidate, local)
		if err != nil {
			return domain.ProjectedDelivery{}, err
		}
		if !accepted {
			candidate = candidate.AddDays(domain.WeeklyCadenceDays)
		}
	}

	// 3. Периодичность
	ideal := p.applyCadence(anchor, candidate)

	// 4. Закрытый день сдвигаем вперед на ближайший рабочий
	date, status, err := p.calendar.NextOpenDay(ctx, ideal, p.lookahead)
	if err != nil {
		return domain.ProjectedDelivery{}, err
	}

	return domain.ProjectedDelivery{
		Date:      date,
		IdealDate: ideal,
		DayStatus: status,
		Shifted:   !date.Equal(ideal),
	}, nil
}

// Project возвращает count следующих доставок начиная с from.
// Каждая следующая доставка строго позже предыдущей: циклы, идеальная дата которых
// после сдвига попала бы на уже занятый день, пропускаются
func (p *Projector) Project(ctx context.Context, anchor domain.SubscriptionAnchor, from time.Time, count int) ([]domain.ProjectedDelivery, error) {
	if count <= 0 || count > domain.MaxScheduleCount {
		return nil, fmt.Errorf("%w: must be within 1..%d, got %d", ErrInvalidCount, domain.MaxScheduleCount, count)
	}

	result := make([]domain.ProjectedDelivery, 0, count)
	current := anchor
	for i := 0; i < count; i++ {
		occurrence, err := p.NextOccurrence(ctx, current, from)
		if err != nil {
			return nil, err
		}
		result = append(result, occurrence)
		current = p.nextAnchor(current, occurrence)

		// Следующий цикл ищем не раньше дня после этой доставки
		if nextDay := occurrence.Date.AddDays(1).Midnight(p.loc); from.Before(nextDay) {
			from = nextDay
		}
	}

	return result, nil
}

// Advance рассчитывает следующий цикл подписки и возвращает обновленный якорь.
// Вызывается после выполнения (или переноса) очередной доставки.
func (p *Projector) Advance(ctx context.Context, anchor domain.SubscriptionAnchor, from time.Time) (domain.SubscriptionAnchor, domain.ProjectedDelivery, error) {
	occurrence, err := p.NextOccurrence(ctx, anchor, from)
	if err != nil {
		return domain.SubscriptionAnchor{}, domain.ProjectedDelivery{}, err
	}
	return p.nextAnchor(anchor, occurrence), occurrence, nil
}

func (p *Projector) applyCadence(anchor domain.SubscriptionAnchor, candidate domain.CalendarDate) domain.CalendarDate {
	step := anchor.Cadence.Days()

	// Новая подписка: еженедельная берет ближайшую дату, раз в две недели на неделю позже
	if !anchor.HasAnchor() {
		if anchor.Cadence == domain.CadenceBiweekly {
			return candidate.AddDays(domain.WeeklyCadenceDays)
		}
		return candidate
	}

	// Есть якорь: ближайшая дата последовательности anchor + k*step (k >= 1), не раньше candidate
	ideal := anchor.AnchorDate.AddDays(step)
	if ideal.Before(candidate) {
		gap := ideal.DaysUntil(candidate)
		ideal = ideal.AddDays((gap + step - 1) / step * step)
	}
	return ideal
}

func (p *Projector) nextAnchor(anchor domain.SubscriptionAnchor, occurrence domain.ProjectedDelivery) domain.SubscriptionAnchor {
	next := anchor
	next.NextDeliveryDate = occurrence.Date
	next.AnchorDate = occurrence.IdealDate

	if occurrence.Shifted && p.shiftPolicy == domain.ShiftPermanent {
		next.AnchorDate = occurrence.Date
		next.PreferredWeekday = occurrence.Date.Weekday()
	}

	return next
}

func (p *Projector) acceptsSameDay(ctx context.Context, day domain.CalendarDate, local time.Time) (bool, error) {
	status, err := p.calendar.GetStatus(ctx, day)
	if err != nil {
		return false, err
	}
	rule, err := p.policy.GetRule(status)
	if err != nil {
		return false, err
	}
	return p.policy.AcceptsSameDay(rule, local), nil
}

func validateAnchor(anchor domain.SubscriptionAnchor) error {
	if !domain.IsValidWeekday(anchor.PreferredWeekday) {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, anchor.PreferredWeekday)
	}
	if !anchor.Cadence.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCadence, anchor.Cadence)
	}
	return nil
}
