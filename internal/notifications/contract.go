package notifications

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	"github.com/m04kA/UniSport-ReservationService/internal/integrations/userdirectory"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer интерфейс отправки почты
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// UserResolver интерфейс резолва пользователя в e-mail адрес
type UserResolver interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID string) (*userdirectory.User, error)
}

// FacilityGetter интерфейс получения спортивного объекта для писем
type FacilityGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}
