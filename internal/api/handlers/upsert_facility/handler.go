package upsert_facility

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
	msgInvalidFacility    = "Facility name is required and capacity must be non-negative."
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

// Handle PUT /api/v1/facilities и PUT /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// ID из пути имеет приоритет над телом
	if facilityID := mux.Vars(r)["facilityId"]; facilityID != "" {
		req.ID = facilityID
	}

	created := req.ID == ""

	result, err := h.service.UpsertFacility(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFacility)

		default:
			h.logger.Error("PUT /facilities - Failed: facility=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.logger.Info("PUT /facilities - Facility saved: id=%s", result.ID)
	handlers.RespondJSON(w, status, result)
}
