package ban

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	"github.com/m04kA/UniSport-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UniSport-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий блокировок бронирования за неявку
// Одна строка на пользователя: повторная неявка сдвигает blocked_until
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert записывает (или продлевает) блокировку пользователя
// Merge-семантика по user_id: существующая запись обновляется новым
// сроком и причиной, остальные поля не теряются
func (r *Repository) Upsert(ctx context.Context, b *domain.ReservationBan) (*domain.ReservationBan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_bans").
		Columns(
			"user_id",
			"blocked_until",
			"reason",
		).
		Values(
			b.UserID,
			b.BlockedUntil,
			b.Reason,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			blocked_until = EXCLUDED.blocked_until,
			reason = EXCLUDED.reason,
			updated_at = now()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByUserID получает текущую блокировку пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.ReservationBan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"blocked_until",
		"reason",
		"updated_at",
	).
		From("reservation_bans").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.ReservationBan
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.UserID,
		&b.BlockedUntil,
		&b.Reason,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan ban: %v", ErrScanRow, err)
	}

	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
