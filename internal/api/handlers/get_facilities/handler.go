package get_facilities

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities"
)

const (
	msgFacilityNotFound = "Facility not found."
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

// HandleList GET /api/v1/facilities
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListFacilities(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/facilities/{facilityId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	result, err := h.service.GetFacility(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /facilities/{id} - Failed: facility=%s: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListSlots GET /api/v1/facilities/{facilityId}/slots
func (h *Handler) HandleListSlots(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	result, err := h.service.ListFacilitySlots(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrInvalidInput):
			handlers.RespondBadRequest(w, "Facility id is required.")

		default:
			h.logger.Error("GET /facilities/{id}/slots - Failed: facility=%s: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
