package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
	"github.com/m04kA/SMC-DeliveryService/internal/service/cutoff"
	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

var storeZone = time.FixedZone("IST", 2*60*60)

type fakeOracle struct {
	holidays map[domain.CalendarDate]string
	all      bool
	err      error
}

func (f *fakeOracle) LookupHoliday(_ context.Context, date domain.CalendarDate) (*domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.all {
		return &domain.Holiday{Date: date, Name: "closure"}, nil
	}
	if name, ok := f.holidays[date]; ok {
		return &domain.Holiday{Date: date, Name: name}, nil
	}
	return nil, nil
}

func newTestScheduler(t *testing.T, oracle calendar.HolidayOracle) *Scheduler {
	t.Helper()

	policy, err := cutoff.NewPolicy(cutoff.Config{
		RegularCutoff: "18:00",
		ReducedCutoff: "12:00",
		WindowStart:   "09:00",
	})
	require.NoError(t, err)

	cal := calendar.NewCalendar(oracle, calendar.Config{RestDay: time.Saturday, RestDayEveReduced: true})

	s, err := NewScheduler(cal, policy, Config{Location: storeZone, LookaheadDays: 14})
	require.NoError(t, err)
	return s
}

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2026, month, day, hour, minute, 0, 0, storeZone)
}

func TestNewSchedulerValidation(t *testing.T) {
	_, err := NewScheduler(nil, nil, Config{LookaheadDays: 14})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewScheduler(nil, nil, Config{Location: storeZone, LookaheadDays: 0})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScheduleImmediate(t *testing.T) {
	oracle := &fakeOracle{holidays: map[domain.CalendarDate]string{
		domain.NewCalendarDate(2026, time.September, 21): "Yom Kippur",
	}}
	s := newTestScheduler(t, oracle)

	tests := []struct {
		name       string
		now        time.Time
		wantDate   domain.CalendarDate
		wantStatus domain.DayStatus
	}{
		{
			name:       "reduced-hours friday before cutoff",
			now:        at(time.March, 6, 8, 0),
			wantDate:   domain.NewCalendarDate(2026, time.March, 6),
			wantStatus: domain.DayReducedHours,
		},
		{
			name:       "reduced-hours friday after cutoff skips closed saturday",
			now:        at(time.March, 6, 14, 0),
			wantDate:   domain.NewCalendarDate(2026, time.March, 8),
			wantStatus: domain.DayRegular,
		},
		{
			name:       "reduced-hours friday exactly at cutoff",
			now:        at(time.March, 6, 12, 0),
			wantDate:   domain.NewCalendarDate(2026, time.March, 8),
			wantStatus: domain.DayRegular,
		},
		{
			name:       "regular day before cutoff",
			now:        at(time.March, 4, 17, 59),
			wantDate:   domain.NewCalendarDate(2026, time.March, 4),
			wantStatus: domain.DayRegular,
		},
		{
			name:       "regular day after cutoff",
			now:        at(time.March, 4, 18, 0),
			wantDate:   domain.NewCalendarDate(2026, time.March, 5),
			wantStatus: domain.DayRegular,
		},
		{
			name:       "closed saturday morning",
			now:        at(time.March, 7, 7, 0),
			wantDate:   domain.NewCalendarDate(2026, time.March, 8),
			wantStatus: domain.DayRegular,
		},
		{
			name:       "holiday eve after cutoff skips the holiday",
			now:        at(time.September, 20, 13, 0),
			wantDate:   domain.NewCalendarDate(2026, time.September, 22),
			wantStatus: domain.DayRegular,
		},
		{
			name:       "friday after cutoff lands on sunday holiday eve",
			now:        at(time.September, 18, 19, 0),
			wantDate:   domain.NewCalendarDate(2026, time.September, 20),
			wantStatus: domain.DayReducedHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ScheduleImmediate(context.Background(), tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, got.Date)
			assert.Equal(t, tt.wantStatus, got.DayStatus)
			assert.Equal(t, types.TimeString("09:00"), got.WindowStart)
		})
	}
}

func TestScheduleImmediateNormalizesTimezone(t *testing.T) {
	s := newTestScheduler(t, &fakeOracle{})

	// 05:30 UTC is 07:30 in the store, friday, before the reduced cutoff
	now := time.Date(2026, time.March, 6, 5, 30, 0, 0, time.UTC)
	got, err := s.ScheduleImmediate(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, domain.NewCalendarDate(2026, time.March, 6), got.Date)

	// 10:30 UTC is 12:30 in the store, already past the reduced cutoff
	now = time.Date(2026, time.March, 6, 10, 30, 0, 0, time.UTC)
	got, err = s.ScheduleImmediate(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, domain.NewCalendarDate(2026, time.March, 8), got.Date)
}

func TestScheduleImmediateIsIdempotent(t *testing.T) {
	s := newTestScheduler(t, &fakeOracle{})
	now := at(time.March, 5, 21, 15)

	first, err := s.ScheduleImmediate(context.Background(), now)
	require.NoError(t, err)
	second, err := s.ScheduleImmediate(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScheduleImmediateNeverClosedDay(t *testing.T) {
	oracle := &fakeOracle{holidays: map[domain.CalendarDate]string{
		domain.NewCalendarDate(2026, time.April, 2): "Pesach I",
		domain.NewCalendarDate(2026, time.April, 8): "Pesach VII",
	}}
	s := newTestScheduler(t, oracle)
	cal := calendar.NewCalendar(oracle, calendar.Config{RestDay: time.Saturday, RestDayEveReduced: true})

	for now := at(time.March, 25, 0, 0); now.Before(at(time.April, 15, 0, 0)); now = now.Add(97 * time.Minute) {
		got, err := s.ScheduleImmediate(context.Background(), now)
		require.NoError(t, err)

		status, err := cal.GetStatus(context.Background(), got.Date)
		require.NoError(t, err)
		require.NotEqual(t, domain.DayClosed, status, "now=%s scheduled=%s", now, got.Date)
		require.False(t, got.Date.Before(domain.DateOf(now, storeZone)))
	}
}

func TestScheduleImmediateNoEligibleDate(t *testing.T) {
	s := newTestScheduler(t, &fakeOracle{all: true})

	_, err := s.ScheduleImmediate(context.Background(), at(time.March, 4, 10, 0))
	require.ErrorIs(t, err, calendar.ErrNoEligibleDate)
}

func TestScheduleImmediateCalendarUnavailable(t *testing.T) {
	s := newTestScheduler(t, &fakeOracle{err: errors.New("timeout")})

	_, err := s.ScheduleImmediate(context.Background(), at(time.March, 4, 10, 0))
	require.ErrorIs(t, err, calendar.ErrCalendarUnavailable)
}

func TestDescribe(t *testing.T) {
	s := newTestScheduler(t, &fakeOracle{})

	t.Run("same day countdown", func(t *testing.T) {
		got, err := s.Describe(context.Background(), at(time.March, 4, 15, 45))
		require.NoError(t, err)
		assert.Equal(t, domain.CategorySameDayCountdown, got.Category)
		require.NotNil(t, got.RemainingMinutes)
		assert.Equal(t, 135, *got.RemainingMinutes)
		assert.Equal(t, "Order within 2 h 15 min for same-day delivery.", got.Message)
		assert.Equal(t, domain.NewCalendarDate(2026, time.March, 4), got.Delivery.Date)
	})

	t.Run("reduced day countdown uses the reduced cutoff", func(t *testing.T) {
		got, err := s.Describe(context.Background(), at(time.March, 6, 11, 20))
		require.NoError(t, err)
		assert.Equal(t, domain.CategorySameDayCountdown, got.Category)
		require.NotNil(t, got.RemainingMinutes)
		assert.Equal(t, 40, *got.RemainingMinutes)
	})

	t.Run("next day", func(t *testing.T) {
		got, err := s.Describe(context.Background(), at(time.March, 4, 19, 0))
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryNextDay, got.Category)
		assert.Nil(t, got.RemainingMinutes)
		assert.Equal(t, "Orders placed now will be delivered on Thursday, 5 March from 09:00.", got.Message)
	})

	t.Run("closed today", func(t *testing.T) {
		got, err := s.Describe(context.Background(), at(time.March, 7, 10, 0))
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryClosedToday, got.Category)
		assert.Nil(t, got.RemainingMinutes)
		assert.Equal(t, domain.NewCalendarDate(2026, time.March, 8), got.Delivery.Date)
		assert.Contains(t, got.Message, "Sunday, 8 March")
	})
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45 min", formatMinutes(45))
	assert.Equal(t, "2 h", formatMinutes(120))
	assert.Equal(t, "1 h 1 min", formatMinutes(61))
}
