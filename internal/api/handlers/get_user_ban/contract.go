package get_user_ban

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetUserBan(ctx context.Context, userID, requesterID string, isAdmin bool) (*models.BanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
