package subscription

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

func TestSelectByIDQuery(t *testing.T) {
	query, args, err := selectByID(7, false).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, preferred_weekday, cadence, anchor_date, next_delivery_date, updated_at FROM subscription_anchors WHERE id = $1",
		query)
	assert.Equal(t, []interface{}{int64(7)}, args)

	query, _, err = selectByID(7, true).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id = $1 FOR UPDATE")
}

func TestSelectDueQuery(t *testing.T) {
	before := domain.NewCalendarDate(2026, time.September, 22)

	query, args, err := selectDue(before, 100).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE next_delivery_date < $1 ORDER BY next_delivery_date ASC, id ASC LIMIT 100")
	assert.Equal(t, []interface{}{before.Time()}, args)
}

func TestUpdateScheduleQuery(t *testing.T) {
	anchor := &domain.SubscriptionAnchor{
		ID:               3,
		PreferredWeekday: time.Monday,
		AnchorDate:       domain.NewCalendarDate(2026, time.September, 21),
	}

	query, args, err := updateSchedule(anchor).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE subscription_anchors SET preferred_weekday = $1, anchor_date = $2, next_delivery_date = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at",
		query)
	require.Len(t, args, 4)
	assert.Equal(t, 1, args[0])
	assert.Equal(t, sql.NullTime{Time: anchor.AnchorDate.Time(), Valid: true}, args[1])
	assert.Equal(t, sql.NullTime{}, args[2])
	assert.Equal(t, int64(3), args[3])
}

type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *int:
			*d = v.(int)
		case *string:
			*d = v.(string)
		case *sql.NullTime:
			*d = v.(sql.NullTime)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("unexpected dest %T", d)
		}
	}
	return nil
}

func TestScanAnchor(t *testing.T) {
	updated := time.Date(2026, time.September, 14, 16, 0, 0, 0, time.UTC)
	row := fakeRow{values: []interface{}{
		int64(42),
		int(time.Friday),
		"BIWEEKLY",
		sql.NullTime{Time: time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC), Valid: true},
		sql.NullTime{},
		updated,
	}}

	anchor, err := scanAnchor(row)
	require.NoError(t, err)
	assert.Equal(t, int64(42), anchor.ID)
	assert.Equal(t, time.Friday, anchor.PreferredWeekday)
	assert.Equal(t, domain.CadenceBiweekly, anchor.Cadence)
	assert.Equal(t, domain.NewCalendarDate(2026, time.September, 4), anchor.AnchorDate)
	assert.True(t, anchor.NextDeliveryDate.IsZero())
	assert.Equal(t, updated, anchor.UpdatedAt)

	_, err = scanAnchor(fakeRow{err: sql.ErrNoRows})
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMapPQError(t *testing.T) {
	assert.Equal(t, ErrConcurrentUpdate, mapPQError(&pq.Error{Code: "40001"}))
	assert.Equal(t, ErrConcurrentUpdate, mapPQError(fmt.Errorf("wrapped: %w", &pq.Error{Code: "40001"})))
	assert.Equal(t, ErrExecQuery, mapPQError(&pq.Error{Code: "23505"}))
	assert.Equal(t, ErrExecQuery, mapPQError(errors.New("connection reset")))
}
