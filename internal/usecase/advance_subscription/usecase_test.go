package advance_subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
	"github.com/m04kA/SMC-DeliveryService/internal/service/cutoff"
	"github.com/m04kA/SMC-DeliveryService/internal/service/recurrence"
	"github.com/m04kA/SMC-DeliveryService/pkg/logger"
)

var storeZone = time.FixedZone("IST", 2*60*60)

func date(m time.Month, d int) domain.CalendarDate {
	return domain.NewCalendarDate(2026, m, d)
}

type fakeOracle struct {
	err error
}

func (f *fakeOracle) LookupHoliday(_ context.Context, d domain.CalendarDate) (*domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	if d == date(time.September, 21) {
		return &domain.Holiday{Date: d, Name: "Yom Kippur"}, nil
	}
	return nil, nil
}

type fakeRepo struct {
	items     map[int64]*domain.SubscriptionAnchor
	updateErr error
	listErr   error
	updates   int
}

func (r *fakeRepo) GetForUpdate(_ context.Context, id int64) (*domain.SubscriptionAnchor, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeRepo) UpdateSchedule(_ context.Context, anchor *domain.SubscriptionAnchor) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	copied := *anchor
	r.items[anchor.ID] = &copied
	return nil
}

func (r *fakeRepo) ListDue(_ context.Context, before domain.CalendarDate, limit int) ([]*domain.SubscriptionAnchor, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := make([]*domain.SubscriptionAnchor, 0)
	for id := int64(1); id <= int64(len(r.items)) && len(result) < limit; id++ {
		if item, ok := r.items[id]; ok && item.IsDue(before) {
			copied := *item
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeSweepMetrics struct {
	advanced int
}

func (m *fakeSweepMetrics) AddSweepAdvanced(n int) {
	m.advanced += n
}

func newTestUseCase(t *testing.T, repo *fakeRepo, oracle calendar.HolidayOracle, metrics SweepRecorder) (*UseCase, *fakeTx) {
	t.Helper()

	policy, err := cutoff.NewPolicy(cutoff.Config{RegularCutoff: "18:00", ReducedCutoff: "12:00", WindowStart: "09:00"})
	require.NoError(t, err)

	cal := calendar.NewCalendar(oracle, calendar.Config{RestDay: time.Saturday, RestDayEveReduced: true})

	projector, err := recurrence.NewProjector(cal, policy, recurrence.Config{Location: storeZone, LookaheadDays: 14})
	require.NoError(t, err)

	tx := &fakeTx{}
	uc := NewUseCase(repo, projector, cal, tx, metrics, Config{Location: storeZone, BatchSize: 10}, logger.NewNop())
	return uc, tx
}

func mondaySubscription() *domain.SubscriptionAnchor {
	return &domain.SubscriptionAnchor{
		ID:               1,
		PreferredWeekday: time.Monday,
		Cadence:          domain.CadenceWeekly,
		AnchorDate:       date(time.September, 14),
		NextDeliveryDate: date(time.September, 14),
	}
}

func TestExecute(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{1: mondaySubscription()}}
	uc, tx := newTestUseCase(t, repo, &fakeOracle{}, nil)

	fulfilled := time.Date(2026, time.September, 14, 11, 0, 0, 0, storeZone)
	resp, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, FulfilledAt: &fulfilled})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, date(time.September, 22), resp.Next.Date)
	assert.Equal(t, date(time.September, 21), resp.Next.IdealDate)
	assert.True(t, resp.Next.Shifted)

	stored := repo.items[1]
	assert.Equal(t, date(time.September, 21), stored.AnchorDate)
	assert.Equal(t, date(time.September, 22), stored.NextDeliveryDate)
	assert.Equal(t, time.Monday, stored.PreferredWeekday)
}

func TestExecuteMorningFulfillmentDoesNotRepeatSameDay(t *testing.T) {
	sub := mondaySubscription()
	sub.AnchorDate = domain.CalendarDate{}
	repo := &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{1: sub}}
	uc, _ := newTestUseCase(t, repo, &fakeOracle{}, nil)

	// доставка выполнена утром, до отсечки того же дня
	fulfilled := time.Date(2026, time.September, 14, 9, 30, 0, 0, storeZone)
	resp, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, FulfilledAt: &fulfilled})
	require.NoError(t, err)
	assert.Equal(t, date(time.September, 22), resp.Next.Date)
}

func TestExecuteRepeatedFulfillmentIsNoop(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{1: mondaySubscription()}}
	uc, _ := newTestUseCase(t, repo, &fakeOracle{}, nil)

	fulfilled := time.Date(2026, time.September, 14, 16, 0, 0, 0, storeZone)
	req := &Request{SubscriptionID: 1, FulfilledAt: &fulfilled}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.AlreadyFulfilled)
	assert.Equal(t, date(time.September, 22), first.Next.Date)

	// повтор того же запроса не сдвигает подписку
	for i := 0; i < 2; i++ {
		again, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, again.AlreadyFulfilled)
		assert.Equal(t, date(time.September, 22), again.Next.Date)
		assert.Equal(t, date(time.September, 21), again.Next.IdealDate)
		assert.True(t, again.Next.Shifted)
		assert.Equal(t, domain.DayRegular, again.Next.DayStatus)
	}

	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, date(time.September, 22), repo.items[1].NextDeliveryDate)
}

func TestExecuteErrors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, tx := newTestUseCase(t, &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{}}, &fakeOracle{}, nil)
		_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 0})
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, tx.calls)
	})

	t.Run("not found", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{}}, &fakeOracle{}, nil)
		_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 5})
		require.ErrorIs(t, err, ErrSubscriptionNotFound)
	})

	t.Run("calendar unavailable", func(t *testing.T) {
		repo := &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{1: mondaySubscription()}}
		uc, _ := newTestUseCase(t, repo, &fakeOracle{err: errors.New("timeout")}, nil)
		_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1})
		require.ErrorIs(t, err, ErrCalendarUnavailable)
		assert.Zero(t, repo.updates)
	})

	t.Run("concurrent update", func(t *testing.T) {
		repo := &fakeRepo{
			items:     map[int64]*domain.SubscriptionAnchor{1: mondaySubscription()},
			updateErr: subscriptionRepo.ErrConcurrentUpdate,
		}
		uc, _ := newTestUseCase(t, repo, &fakeOracle{}, nil)
		fulfilled := time.Date(2026, time.September, 14, 16, 0, 0, 0, storeZone)
		_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, FulfilledAt: &fulfilled})
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestSweepDue(t *testing.T) {
	overdue := mondaySubscription()

	upcoming := mondaySubscription()
	upcoming.ID = 2
	upcoming.NextDeliveryDate = date(time.September, 28)
	upcoming.AnchorDate = date(time.September, 28)

	repo := &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{1: overdue, 2: upcoming}}
	metrics := &fakeSweepMetrics{}
	uc, _ := newTestUseCase(t, repo, &fakeOracle{}, metrics)

	result, err := uc.SweepDue(context.Background(), date(time.September, 16))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 1, result.Advanced)
	assert.Zero(t, result.Failed)
	assert.Equal(t, 1, metrics.advanced)

	assert.Equal(t, date(time.September, 22), repo.items[1].NextDeliveryDate)
	assert.Equal(t, date(time.September, 28), repo.items[2].NextDeliveryDate)

	// повторный проход ничего не меняет
	result, err = uc.SweepDue(context.Background(), date(time.September, 16))
	require.NoError(t, err)
	assert.Zero(t, result.Checked)
}

func TestSweepDueCountsFailures(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.SubscriptionAnchor{1: mondaySubscription()}}
	uc, _ := newTestUseCase(t, repo, &fakeOracle{err: errors.New("timeout")}, nil)

	result, err := uc.SweepDue(context.Background(), date(time.September, 16))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Zero(t, result.Advanced)
}

func TestSweepDueListError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("db down")}
	uc, _ := newTestUseCase(t, repo, &fakeOracle{}, nil)

	_, err := uc.SweepDue(context.Background(), date(time.September, 16))
	require.ErrorIs(t, err, ErrInternal)
}
