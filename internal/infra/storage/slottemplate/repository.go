package slottemplate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	"github.com/m04kA/UniSport-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UniSport-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий еженедельных шаблонов слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает шаблон слота по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotTemplateColumns()...).
		From("slot_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tpl domain.SlotTemplate
	var isAvailable, isVisible sql.NullBool

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&tpl.FacilityID,
		&tpl.DayOfWeek,
		&tpl.StartHour,
		&tpl.EndHour,
		&isAvailable,
		&isVisible,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot template: %v", ErrScanRow, err)
	}

	applyFlagDefaults(&tpl, isAvailable, isVisible)

	return &tpl, nil
}

// ListByFacility получает все шаблоны слотов спортивного объекта
// Сортировка по дню недели и времени начала для стабильного расписания
func (r *Repository) ListByFacility(ctx context.Context, facilityID string) ([]*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotTemplateColumns()...).
		From("slot_templates").
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("day_of_week ASC", "start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotTemplates(rows)
}

// ListByFacilityAndDay получает шаблоны слотов объекта на конкретный день недели
// dayOfWeek: 0 (воскресенье) - 6 (суббота)
func (r *Repository) ListByFacilityAndDay(ctx context.Context, facilityID string, dayOfWeek int) ([]*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotTemplateColumns()...).
		From("slot_templates").
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy("start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacilityAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacilityAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlotTemplates(rows)
}

// Upsert создает или полностью заменяет шаблон слота
// PUT-семантика: администратор управляет шаблоном по известному id
func (r *Repository) Upsert(ctx context.Context, tpl *domain.SlotTemplate) (*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_templates").
		Columns(
			"id",
			"facility_id",
			"day_of_week",
			"start_hour",
			"end_hour",
			"is_available",
			"is_visible",
		).
		Values(
			tpl.ID,
			tpl.FacilityID,
			tpl.DayOfWeek,
			tpl.StartHour,
			tpl.EndHour,
			tpl.IsAvailable,
			tpl.IsVisible,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			facility_id = EXCLUDED.facility_id,
			day_of_week = EXCLUDED.day_of_week,
			start_hour = EXCLUDED.start_hour,
			end_hour = EXCLUDED.end_hour,
			is_available = EXCLUDED.is_available,
			is_visible = EXCLUDED.is_visible`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return tpl, nil
}

// Delete удаляет шаблон слота
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_templates").
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
		return ErrSlotTemplateNotFound
	}

	return nil
}

// DeleteByFacility удаляет все шаблоны слотов объекта
// Объект без шаблонов - не ошибка
func (r *Repository) DeleteByFacility(ctx context.Context, facilityID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_templates").
		Where(squirrel.Eq{"facility_id": facilityID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByFacility - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByFacility - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanSlotTemplates сканирует результаты запроса в слайс шаблонов
func (r *Repository) scanSlotTemplates(rows *sql.Rows) ([]*domain.SlotTemplate, error) {
	templates := make([]*domain.SlotTemplate, 0)

	for rows.Next() {
		var tpl domain.SlotTemplate
		var isAvailable, isVisible sql.NullBool

		err := rows.Scan(
			&tpl.ID,
			&tpl.FacilityID,
			&tpl.DayOfWeek,
			&tpl.StartHour,
			&tpl.EndHour,
			&isAvailable,
			&isVisible,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlotTemplates - scan row: %v", ErrScanRow, err)
		}

		applyFlagDefaults(&tpl, isAvailable, isVisible)

		templates = append(templates, &tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlotTemplates - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

// applyFlagDefaults применяет политику дефолтов к NULL-флагам шаблона
// Старые шаблоны создавались без флагов доступности: NULL читается как true
func applyFlagDefaults(tpl *domain.SlotTemplate, isAvailable, isVisible sql.NullBool) {
	tpl.IsAvailable = domain.DefaultIsAvailable
	if isAvailable.Valid {
		tpl.IsAvailable = isAvailable.Bool
	}

	tpl.IsVisible = domain.DefaultIsVisible
	if isVisible.Valid {
		tpl.IsVisible = isVisible.Bool
	}
}

func slotTemplateColumns() []string {
	return []string{
		"id",
		"facility_id",
		"day_of_week",
		"start_hour",
		"end_hour",
		"is_available",
		"is_visible",
	}
}
