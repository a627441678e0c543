package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBookingService/pkg/psqlbuilder"
)

// pgForeignKeyViolation код ошибки postgres foreign_key_violation
const pgForeignKeyViolation = "23503"

var columns = []string{
	"id",
	"studio_id",
	"customer_id",
	"time_slot_id",
	"package_id",
	"session_type",
	"duration_minutes",
	"base_price",
	"equipment_cost",
	"total_price",
	"status",
	"equipment_requested",
	"special_requirements",
	"custom_form_responses",
	"notes",
	"confirmed_at",
	"cancelled_at",
	"cancellation_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований (appointments)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Вызывается только вместе со slot.Reserve в одной транзакции
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"studio_id",
			"customer_id",
			"time_slot_id",
			"package_id",
			"session_type",
			"duration_minutes",
			"base_price",
			"equipment_cost",
			"total_price",
			"status",
			"equipment_requested",
			"special_requirements",
			"custom_form_responses",
			"notes",
			"confirmed_at",
		).
		Values(
			a.ID,
			a.StudioID,
			a.CustomerID,
			a.TimeSlotID,
			a.PackageID,
			a.SessionType,
			a.DurationMins,
			a.BasePrice,
			a.EquipmentCost,
			a.TotalPrice,
			a.Status,
			a.EquipmentRequested,
			a.SpecialRequirements,
			a.CustomFormResponses,
			a.Notes,
			a.ConfirmedAt,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.StudioID,
		&a.CustomerID,
		&a.TimeSlotID,
		&a.PackageID,
		&a.SessionType,
		&a.DurationMins,
		&a.BasePrice,
		&a.EquipmentCost,
		&a.TotalPrice,
		&a.Status,
		&a.EquipmentRequested,
		&a.SpecialRequirements,
		&a.CustomFormResponses,
		&a.Notes,
		&a.ConfirmedAt,
		&a.CancelledAt,
		&a.CancellationReason,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// Cancel переводит бронирование в cancelled, только если оно сейчас pending или confirmed.
// Условие по статусу в самом UPDATE: из двух одновременных отмен успешна только одна,
// вторая получает ErrCannotCancel и не освобождает место в слоте повторно
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason *string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildCancelQuery(id, reason, cancelledAt)
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

func buildCancelQuery(id uuid.UUID, reason *string, cancelledAt time.Time) (string, []interface{}, error) {
	cancellable := make([]string, len(domain.CancellableStatuses))
	for i, s := range domain.CancellableStatuses {
		cancellable[i] = string(s)
	}

	return psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("status = ANY(?)", pq.Array(cancellable))).
		ToSql()
}
