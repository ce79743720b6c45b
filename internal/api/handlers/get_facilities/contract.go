package get_facilities

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities/models"
)

type FacilitiesService interface {
	ListFacilities(ctx context.Context) (*models.FacilityListResponse, error)
	GetFacility(ctx context.Context, id string) (*models.FacilityResponse, error)
	ListFacilitySlots(ctx context.Context, facilityID string) (*models.SlotTemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
