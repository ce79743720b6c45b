package get_day_schedule

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

// SlotTemplateRepository интерфейс репозитория шаблонов слотов
type SlotTemplateRepository interface {
	ListByFacilityAndDay(ctx context.Context, facilityID string, dayOfWeek int) ([]*domain.SlotTemplate, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Reservation, error)
}

// SlotCache кэш шаблонов слотов по (объект, день недели)
// Промах кэша - (nil, nil); ошибки кэша не фатальны для запроса
type SlotCache interface {
	GetDayTemplates(ctx context.Context, facilityID string, dayOfWeek int) ([]*domain.SlotTemplate, error)
	SetDayTemplates(ctx context.Context, facilityID string, dayOfWeek int, templates []*domain.SlotTemplate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
