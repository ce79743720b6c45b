package facilities

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

// FacilityRepository интерфейс репозитория спортивных объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
	Upsert(ctx context.Context, f *domain.Facility) (*domain.Facility, error)
	Delete(ctx context.Context, id string) error
}

// SlotTemplateRepository интерфейс репозитория шаблонов слотов
type SlotTemplateRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SlotTemplate, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*domain.SlotTemplate, error)
	Upsert(ctx context.Context, tpl *domain.SlotTemplate) (*domain.SlotTemplate, error)
	Delete(ctx context.Context, id string) error
	DeleteByFacility(ctx context.Context, facilityID string) error
}

// SlotCache кэш шаблонов слотов, сбрасываемый при изменениях администратора
type SlotCache interface {
	InvalidateFacility(ctx context.Context, facilityID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
