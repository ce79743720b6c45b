package reservations

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// BanRepository интерфейс репозитория блокировок за неявку
type BanRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.ReservationBan, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
