package studio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBookingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"slug",
	"description",
	"email",
	"phone",
	"website",
	"address_line1",
	"address_line2",
	"city",
	"state",
	"postal_code",
	"country",
	"timezone",
	"currency",
	"booking_window_days",
	"min_booking_notice_hours",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий студий (только чтение, управление студиями вне этого сервиса)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория студий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveBySlug получает активную студию по slug
func (r *Repository) GetActiveBySlug(ctx context.Context, slug string) (*domain.Studio, error) {
	return r.getOne(ctx, "GetActiveBySlug", squirrel.Eq{"slug": slug, "is_active": true})
}

// GetActiveByID получает активную студию по ID
func (r *Repository) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Studio, error) {
	return r.getOne(ctx, "GetActiveByID", squirrel.Eq{"id": id, "is_active": true})
}

func (r *Repository) getOne(ctx context.Context, method string, where squirrel.Eq) (*domain.Studio, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("studios").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var s domain.Studio
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Slug,
		&s.Description,
		&s.Email,
		&s.Phone,
		&s.Website,
		&s.AddressLine1,
		&s.AddressLine2,
		&s.City,
		&s.State,
		&s.PostalCode,
		&s.Country,
		&s.Timezone,
		&s.Currency,
		&s.BookingWindowDays,
		&s.MinBookingNoticeHours,
		&s.IsActive,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan studio: %v", ErrScanRow, method, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
