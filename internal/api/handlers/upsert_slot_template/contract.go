package upsert_slot_template

import (
	"context"

	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities/models"
)

type FacilitiesService interface {
	UpsertSlotTemplate(ctx context.Context, req *models.UpsertSlotTemplateRequest) (*models.SlotTemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
