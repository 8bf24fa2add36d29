package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// NamedOracle источник праздников с именем (для логов и метрик)
type NamedOracle struct {
	Name   string
	Oracle HolidayOracle
}

// MultiOracle опрашивает источники по порядку, первый найденный праздник побеждает.
// Ошибка любого источника считается ошибкой классификации.
type MultiOracle struct {
	sources []NamedOracle
}

// NewMultiOracle создает составной источник праздников
func NewMultiOracle(sources ...NamedOracle) *MultiOracle {
	return &MultiOracle{sources: sources}
}

// LookupHoliday реализует HolidayOracle
func (m *MultiOracle) LookupHoliday(ctx context.Context, date domain.CalendarDate) (*domain.Holiday, error) {
	for _, src := range m.sources {
		holiday, err := src.Oracle.LookupHoliday(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name, err)
		}
		if holiday != nil {
			if holiday.Source == "" {
				holiday.Source = src.Name
			}
			return holiday, nil
		}
	}
	return nil, nil
}

// LookupObserver получатель метрик обращений к источнику
type LookupObserver interface {
	ObserveOracleLookup(source string, err error, duration time.Duration)
}

// InstrumentedOracle оборачивает источник праздников метриками и логами ошибок
type InstrumentedOracle struct {
	source   NamedOracle
	observer LookupObserver
	logger   Logger
}

// NewInstrumentedOracle создает обертку над источником
func NewInstrumentedOracle(source NamedOracle, observer LookupObserver, logger Logger) *InstrumentedOracle {
	return &InstrumentedOracle{
		source:   source,
		observer: observer,
		logger:   logger,
	}
}

// LookupHoliday реализует HolidayOracle
func (o *InstrumentedOracle) LookupHoliday(ctx context.Context, date domain.CalendarDate) (*domain.Holiday, error) {
	started := time.Now()
	holiday, err := o.source.Oracle.LookupHoliday(ctx, date)
	if o.observer != nil {
		o.observer.ObserveOracleLookup(o.source.Name, err, time.Since(started))
	}
	if err != nil {
		o.logger.Error("Calendar: source %s failed for date %s: %v", o.source.Name, date, err)
		return nil, err
	}
	return holiday, nil
}
