package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DeliveryService/pkg/txmanager"
)

const table = "subscription_anchors"

// Код ошибки PostgreSQL serialization_failure
const pqSerializationFailure = "40001"

var columns = []string{
	"id",
	"preferred_weekday",
	"cadence",
	"anchor_date",
	"next_delivery_date",
	"updated_at",
}

// Repository репозиторий якорей подписок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает подписку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SubscriptionAnchor, error) {
	query, args, err := selectByID(id, false).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	anchor, err := r.queryOne(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return anchor, nil
}

// GetForUpdate получает подписку с блокировкой строки.
// Должен вызываться внутри транзакции (txmanager.TransactionManager)
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.SubscriptionAnchor, error) {
	query, args, err := selectByID(id, true).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	anchor, err := r.queryOne(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetForUpdate: %w", err)
	}
	return anchor, nil
}

// UpdateSchedule сохраняет рассчитанный якорь и дату следующей доставки
func (r *Repository) UpdateSchedule(ctx context.Context, anchor *domain.SubscriptionAnchor) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := updateSchedule(anchor).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSubscriptionNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", mapPQError(err), err)
	}

	anchor.UpdatedAt = updatedAt
	return nil
}

// ListDue возвращает подписки, дата следующей доставки которых раньше before
func (r *Repository) ListDue(ctx context.Context, before domain.CalendarDate, limit int) ([]*domain.SubscriptionAnchor, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectDue(before, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	anchors := make([]*domain.SubscriptionAnchor, 0)
	for rows.Next() {
		anchor, err := scanAnchor(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDue - scan row: %v", ErrScanRow, err)
		}
		anchors = append(anchors, anchor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDue - rows error: %v", ErrScanRow, err)
	}

	return anchors, nil
}

func (r *Repository) queryOne(ctx context.Context, query string, args []interface{}) (*domain.SubscriptionAnchor, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	anchor, err := scanAnchor(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}
	return anchor, nil
}

func selectByID(id int64, forUpdate bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	return builder
}

func selectDue(before domain.CalendarDate, limit int) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Lt{"next_delivery_date": before.Time()}).
		OrderBy("next_delivery_date ASC", "id ASC").
		Limit(uint64(limit))
}

func updateSchedule(anchor *domain.SubscriptionAnchor) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("preferred_weekday", int(anchor.PreferredWeekday)).
		Set("anchor_date", nullDate(anchor.AnchorDate)).
		Set("next_delivery_date", nullDate(anchor.NextDeliveryDate)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": anchor.ID}).
		Suffix("RETURNING updated_at")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAnchor(row scanner) (*domain.SubscriptionAnchor, error) {
	var (
		anchor           domain.SubscriptionAnchor
		weekday          int
		cadence          string
		anchorDate       sql.NullTime
		nextDeliveryDate sql.NullTime
	)

	err := row.Scan(
		&anchor.ID,
		&weekday,
		&cadence,
		&anchorDate,
		&nextDeliveryDate,
		&anchor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	anchor.PreferredWeekday = time.Weekday(weekday)
	anchor.Cadence = domain.Cadence(cadence)
	if anchorDate.Valid {
		anchor.AnchorDate = domain.DateOf(anchorDate.Time, anchorDate.Time.Location())
	}
	if nextDeliveryDate.Valid {
		anchor.NextDeliveryDate = domain.DateOf(nextDeliveryDate.Time, nextDeliveryDate.Time.Location())
	}

	return &anchor, nil
}

// nullDate дата для колонки типа date, нулевая дата пишется как NULL
func nullDate(d domain.CalendarDate) sql.NullTime {
	if d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time(), Valid: true}
}

func mapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqSerializationFailure {
		return ErrConcurrentUpdate
	}
	return ErrExecQuery
}
