package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBookingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"studio_id",
	"package_id",
	"date",
	"start_time",
	"end_time",
	"max_capacity",
	"current_bookings",
	"is_available",
	"override_price",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий временных слотов.
// Счетчик current_bookings меняется только условными UPDATE (Reserve/Release),
// никогда не через read-modify-write в коде
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListAvailable получает бронируемые слоты студии за период
// Условия: is_available, есть свободные места, дата в [DateFrom, DateTo].
// Если задан PackageID - только общие слоты (package_id IS NULL) и слоты этого пакета.
// Сортировка: дата, затем время начала
func (r *Repository) ListAvailable(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("time_slots").
		Where(squirrel.Eq{"studio_id": filter.StudioID, "is_available": true}).
		Where("current_bookings < max_capacity").
		Where(squirrel.GtOrEq{"date": formatDate(filter.DateFrom)}).
		Where(squirrel.LtOrEq{"date": formatDate(filter.DateTo)})

	if filter.PackageID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"package_id": nil},
			squirrel.Eq{"package_id": *filter.PackageID},
		})
	}

	query, args, err := selectBuilder.
		OrderBy("date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailable - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Reserve атомарно занимает одно место в слоте.
// Проверка вместимости и инкремент выполняются одним условным UPDATE, поэтому
// конкурентные запросы не могут превысить max_capacity. Если ни одна строка не
// обновлена, слот заполнен, выключен или в прошлом - возвращается ErrSlotNotAvailable
func (r *Repository) Reserve(ctx context.Context, id uuid.UUID, today time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReserveQuery(id, today)
	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// Release освобождает одно место в слоте, счетчик не опускается ниже нуля
func (r *Repository) Release(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReleaseQuery(id)
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func buildReserveQuery(id uuid.UUID, today time.Time) (string, []interface{}, error) {
	return psqlbuilder.Update("time_slots").
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_available": true}).
		Where("current_bookings < max_capacity").
		Where(squirrel.GtOrEq{"date": formatDate(today)}).
		ToSql()
}

func buildReleaseQuery(id uuid.UUID) (string, []interface{}, error) {
	return psqlbuilder.Update("time_slots").
		Set("current_bookings", squirrel.Expr("GREATEST(current_bookings - 1, 0)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row scanner) (*domain.Slot, error) {
	var (
		s                    domain.Slot
		packageID            uuid.NullUUID
		overridePrice        sql.NullFloat64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.StudioID,
		&packageID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.MaxCapacity,
		&s.CurrentBookings,
		&s.IsAvailable,
		&overridePrice,
		&s.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if packageID.Valid {
		id := packageID.UUID
		s.PackageID = &id
	}
	if overridePrice.Valid {
		price := overridePrice.Float64
		s.OverridePrice = &price
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// formatDate дата для сравнения с колонкой DATE без учета часового пояса
func formatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}
