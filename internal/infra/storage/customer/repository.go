package customer

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

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreate возвращает клиента по email, создавая его при первом бронировании.
// Идемпотентна по email: для существующего клиента имя и телефон не перезаписываются.
// ON CONFLICT DO UPDATE нужен только для того, чтобы RETURNING вернул существующую строку
func (r *Repository) GetOrCreate(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("customers").
		Columns("id", "email", "first_name", "last_name", "phone").
		Values(id, domain.NormalizeEmail(c.Email), c.FirstName, c.LastName, c.Phone).
		Suffix("ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email " +
			"RETURNING id, email, first_name, last_name, phone, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	var result domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.ID,
		&result.Email,
		&result.FirstName,
		&result.LastName,
		&result.Phone,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - execute upsert: %v", ErrExecQuery, err)
	}

	result.CreatedAt = createdAt.Time

	return &result, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "first_name", "last_name", "phone", "created_at").
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Email,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time

	return &c, nil
}
