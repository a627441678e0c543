package catalog

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
	"github.com/m04kA/SMC-StudioBookingService/pkg/types"
)

var columns = []string{
	"id",
	"studio_id",
	"name",
	"slug",
	"description",
	"session_type",
	"duration_minutes",
	"min_duration_minutes",
	"max_duration_minutes",
	"allow_custom_duration",
	"base_price",
	"currency",
	"buffer_time_before",
	"buffer_time_after",
	"max_bookings_per_day",
	"min_booking_notice_hours",
	"max_booking_days_ahead",
	"included_equipment",
	"optional_equipment",
	"special_instructions",
	"custom_questions",
	"status",
	"is_public",
	"requires_approval",
	"featured_image_url",
	"display_order",
	"color",
	"created_at",
	"updated_at",
}

// publicFilter пакет доступен в публичном потоке бронирования
var publicFilter = squirrel.Eq{"status": domain.PackageActive, "is_public": true}

// Repository репозиторий пакетов услуг студии (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пакет по ID без фильтров (для истории бронирований)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetPublicByID получает активный публичный пакет по ID
func (r *Repository) GetPublicByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	return r.getOne(ctx, "GetPublicByID", squirrel.And{squirrel.Eq{"id": id}, publicFilter})
}

// GetPublicByStudioAndID получает активный публичный пакет студии по ID
func (r *Repository) GetPublicByStudioAndID(ctx context.Context, studioID, id uuid.UUID) (*domain.Package, error) {
	return r.getOne(ctx, "GetPublicByStudioAndID",
		squirrel.And{squirrel.Eq{"id": id, "studio_id": studioID}, publicFilter})
}

// GetPublicByStudioAndSlug получает активный публичный пакет студии по slug
func (r *Repository) GetPublicByStudioAndSlug(ctx context.Context, studioID uuid.UUID, slug string) (*domain.Package, error) {
	return r.getOne(ctx, "GetPublicByStudioAndSlug",
		squirrel.And{squirrel.Eq{"studio_id": studioID, "slug": slug}, publicFilter})
}

// ListPublicByStudio получает активные публичные пакеты студии
// Сортировка: display_order по возрастанию, затем новые пакеты первыми
func (r *Repository) ListPublicByStudio(ctx context.Context, studioID uuid.UUID) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("packages").
		Where(squirrel.Eq{"studio_id": studioID}).
		Where(publicFilter).
		OrderBy("display_order ASC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublicByStudio - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublicByStudio - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPublicByStudio - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPublicByStudio - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

func (r *Repository) getOne(ctx context.Context, method string, where squirrel.Sqlizer) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("packages").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	p, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan package: %v", ErrScanRow, method, err)
	}

	return p, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanPackage сканирует строку в пакет.
// JSON-колонки разбираются мягко: битый JSON превращается в пустой список
func scanPackage(row scanner) (*domain.Package, error) {
	var (
		p                            domain.Package
		minDuration, maxDuration     sql.NullInt64
		maxPerDay                    sql.NullInt64
		included, optional, question sql.NullString
		createdAt, updatedAt         sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.StudioID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.SessionType,
		&p.DurationMinutes,
		&minDuration,
		&maxDuration,
		&p.AllowCustomDuration,
		&p.BasePrice,
		&p.Currency,
		&p.BufferTimeBefore,
		&p.BufferTimeAfter,
		&maxPerDay,
		&p.MinBookingNoticeHours,
		&p.MaxBookingDaysAhead,
		&included,
		&optional,
		&p.SpecialInstructions,
		&question,
		&p.Status,
		&p.IsPublic,
		&p.RequiresApproval,
		&p.FeaturedImageURL,
		&p.DisplayOrder,
		&p.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.MinDurationMinutes = nullInt(minDuration)
	p.MaxDurationMinutes = nullInt(maxDuration)
	p.MaxBookingsPerDay = nullInt(maxPerDay)
	p.IncludedEquipment = types.ParseJSONList[string](included.String)
	p.OptionalEquipment = types.ParseJSONList[string](optional.String)
	p.CustomQuestions = types.ParseJSONList[domain.CustomQuestion](question.String)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
