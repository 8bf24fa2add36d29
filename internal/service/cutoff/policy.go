package cutoff

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

// Config время приема заказов и начала окна доставки
type Config struct {
	RegularCutoff types.TimeString // конец приема заказов в обычный день
	ReducedCutoff types.TimeString // конец приема заказов в короткий день
	WindowStart   types.TimeString // начало окна доставки
}

// Policy правила приема заказов по статусу дня.
// Правила неизменяемы после создания.
type Policy struct {
	rules map[domain.DayStatus]domain.CutoffRule
}

// NewPolicy проверяет конфигурацию и создает политику
func NewPolicy(cfg Config) (*Policy, error) {
	for name, ts := range map[string]types.TimeString{
		"regular cutoff": cfg.RegularCutoff,
		"reduced cutoff": cfg.ReducedCutoff,
		"window start":   cfg.WindowStart,
	} {
		if err := ts.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}

	if !cfg.ReducedCutoff.IsBefore(cfg.RegularCutoff) {
		return nil, fmt.Errorf("%w: reduced cutoff %s must be earlier than regular cutoff %s",
			ErrInvalidConfig, cfg.ReducedCutoff, cfg.RegularCutoff)
	}

	return &Policy{
		rules: map[domain.DayStatus]domain.CutoffRule{
			domain.DayRegular: {
				DayStatus:     domain.DayRegular,
				Cutoff:        cfg.RegularCutoff,
				WindowStart:   cfg.WindowStart,
				AcceptsOrders: true,
			},
			domain.DayReducedHours: {
				DayStatus:     domain.DayReducedHours,
				Cutoff:        cfg.ReducedCutoff,
				WindowStart:   cfg.WindowStart,
				AcceptsOrders: true,
			},
			domain.DayClosed: {
				DayStatus:     domain.DayClosed,
				WindowStart:   cfg.WindowStart,
				AcceptsOrders: false,
			},
		},
	}, nil
}

// GetRule возвращает правило для статуса дня
func (p *Policy) GetRule(status domain.DayStatus) (domain.CutoffRule, error) {
	rule, ok := p.rules[status]
	if !ok {
		return domain.CutoffRule{}, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return rule, nil
}

// AcceptsSameDay возвращает true, если заказ в момент now (в часовом поясе магазина)
// успевает до отсечки. Сравнение с точностью до минуты, момент отсечки уже не принимается.
func (p *Policy) AcceptsSameDay(rule domain.CutoffRule, now time.Time) bool {
	if !rule.AcceptsOrders {
		return false
	}
	return types.NewTimeString(now).IsBefore(rule.Cutoff)
}

// MinutesUntilCutoff возвращает число минут до отсечки (0, если отсечка прошла)
func (p *Policy) MinutesUntilCutoff(rule domain.CutoffRule, now time.Time) int {
	if !p.AcceptsSameDay(rule, now) {
		return 0
	}
	return rule.Cutoff.Minutes() - types.NewTimeString(now).Minutes()
}
