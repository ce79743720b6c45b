package upsert_facility

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities/models"
)

type FacilitiesService interface {
	UpsertFacility(ctx context.Context, req *models.UpsertFacilityRequest) (*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
