package closure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DeliveryService/pkg/txmanager"
)

// SourceName имя источника в логах и метриках
const SourceName = "closures"

const table = "store_closures"

// Repository закрытия магазина, заведенные вручную (инвентаризация, корпоративы)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LookupHoliday реализует calendar.HolidayOracle
func (r *Repository) LookupHoliday(ctx context.Context, date domain.CalendarDate) (*domain.Holiday, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectByDate(date).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LookupHoliday - build select query: %v", ErrBuildQuery, err)
	}

	var name string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LookupHoliday - scan closure: %v", ErrExecQuery, err)
	}

	return &domain.Holiday{
		Date:   date,
		Name:   name,
		Source: SourceName,
	}, nil
}

func selectByDate(date domain.CalendarDate) squirrel.SelectBuilder {
	return psqlbuilder.Select("name").
		From(table).
		Where(squirrel.Eq{"date": date.Time()})
}
