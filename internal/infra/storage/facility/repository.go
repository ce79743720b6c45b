package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	"github.com/m04kA/UniSport-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UniSport-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий спортивных объектов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория спортивных объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает спортивный объект по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns()...).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var f domain.Facility
	var description sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&f.ID,
		&f.Name,
		&f.Type,
		&f.Capacity,
		&description,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	if description.Valid {
		f.Description = &description.String
	}

	return &f, nil
}

// List получает все спортивные объекты, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(facilityColumns()...).
		From("facilities").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)

	for rows.Next() {
		var f domain.Facility
		var description sql.NullString

		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Type,
			&f.Capacity,
			&description,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if description.Valid {
			f.Description = &description.String
		}

		facilities = append(facilities, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// Upsert создает или полностью заменяет спортивный объект
func (r *Repository) Upsert(ctx context.Context, f *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facilities").
		Columns(
			"id",
			"name",
			"type",
			"capacity",
			"description",
		).
		Values(
			f.ID,
			f.Name,
			f.Type,
			f.Capacity,
			f.Description,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			capacity = EXCLUDED.capacity,
			description = EXCLUDED.description`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return f, nil
}

// Delete удаляет спортивный объект
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

func facilityColumns() []string {
	return []string{
		"id",
		"name",
		"type",
		"capacity",
		"description",
	}
}
