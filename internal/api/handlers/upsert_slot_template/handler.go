package upsert_slot_template

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities"
	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTemplate    = "Slot template requires facilityId, dayOfWeek 0-6 and endHour after startHour."
)

type Handler struct {
	service FacilitiesService
	logger  Logger
}

func NewHandler(service FacilitiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/slots и PUT /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertSlotTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// ID из пути имеет приоритет над телом
	if slotID := mux.Vars(r)["slotId"]; slotID != "" {
		req.ID = slotID
	}

	created := req.ID == ""

	result, err := h.service.UpsertSlotTemplate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		default:
			h.logger.Error("PUT /slots - Failed: slot=%s, facility=%s: %v", req.ID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.logger.Info("PUT /slots - Slot template saved: id=%s, facility=%s", result.ID, result.FacilityID)
	handlers.RespondJSON(w, status, result)
}
