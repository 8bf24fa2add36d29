package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Config правила классификации дней
type Config struct {
	RestDay           time.Weekday // еженедельный выходной
	RestDayEveReduced bool         // канун выходного считается коротким днем
}

// Calendar классифицирует даты по статусу работы магазина.
// Не хранит состояния, безопасен для конкурентного использования.
type Calendar struct {
	oracle HolidayOracle
	cfg    Config
}

// NewCalendar создает календарь поверх источника праздников
func NewCalendar(oracle HolidayOracle, cfg Config) *Calendar {
	return &Calendar{
		oracle: oracle,
		cfg:    cfg,
	}
}

// GetStatus возвращает статус дня. Ошибка источника праздников
// возвращается как ErrCalendarUnavailable, без подстановки статуса по умолчанию.
func (c *Calendar) GetStatus(ctx context.Context, date domain.CalendarDate) (domain.DayStatus, error) {
	info, err := c.Describe(ctx, date)
	if err != nil {
		return "", err
	}
	return info.Status, nil
}

// Describe классифицирует день и возвращает причину.
// Приоритет правил: выходной > праздник > канун праздника/выходного > обычный день.
func (c *Calendar) Describe(ctx context.Context, date domain.CalendarDate) (domain.DayInfo, error) {
	info := domain.DayInfo{Date: date}

	// 1. Еженедельный выходной
	if date.Weekday() == c.cfg.RestDay {
		info.Status = domain.DayClosed
		info.RestDay = true
		return info, nil
	}

	// 2. Праздник
	holiday, err := c.lookup(ctx, date)
	if err != nil {
		return domain.DayInfo{}, err
	}
	if holiday != nil {
		info.Status = domain.DayClosed
		info.HolidayName = holiday.Name
		return info, nil
	}

	// 3. Канун выходного
	tomorrow := date.AddDays(1)
	if c.cfg.RestDayEveReduced && tomorrow.Weekday() == c.cfg.RestDay {
		info.Status = domain.DayReducedHours
		return info, nil
	}

	// 4. Канун праздника
	nextHoliday, err := c.lookup(ctx, tomorrow)
	if err != nil {
		return domain.DayInfo{}, err
	}
	if nextHoliday != nil {
		info.Status = domain.DayReducedHours
		info.HolidayName = nextHoliday.Name
		return info, nil
	}

	info.Status = domain.DayRegular
	return info, nil
}

// Range классифицирует days дней, начиная с from
func (c *Calendar) Range(ctx context.Context, from domain.CalendarDate, days int) ([]domain.DayInfo, error) {
	if days <= 0 {
		return []domain.DayInfo{}, nil
	}

	result := make([]domain.DayInfo, 0, days)
	for i := 0; i < days; i++ {
		info, err := c.Describe(ctx, from.AddDays(i))
		if err != nil {
			return nil, err
		}
		result = append(result, info)
	}

	return result, nil
}

// NextOpenDay ищет первый день не в статусе CLOSED, начиная с from включительно.
// Проверяется не более lookahead дней, иначе возвращается ErrNoEligibleDate.
func (c *Calendar) NextOpenDay(ctx context.Context, from domain.CalendarDate, lookahead int) (domain.CalendarDate, domain.DayStatus, error) {
	if lookahead <= 0 {
		return domain.CalendarDate{}, "", fmt.Errorf("%w: %d", ErrInvalidLookahead, lookahead)
	}

	for offset := 0; offset < lookahead; offset++ {
		day := from.AddDays(offset)
		status, err := c.GetStatus(ctx, day)
		if err != nil {
			return domain.CalendarDate{}, "", err
		}
		if status != domain.DayClosed {
			return day, status, nil
		}
	}

	return domain.CalendarDate{}, "", fmt.Errorf("%w: from %s, %d days checked", ErrNoEligibleDate, from, lookahead)
}

func (c *Calendar) lookup(ctx context.Context, date domain.CalendarDate) (*domain.Holiday, error) {
	holiday, err := c.oracle.LookupHoliday(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %s: %v", ErrCalendarUnavailable, date, err)
	}
	return holiday, nil
}
