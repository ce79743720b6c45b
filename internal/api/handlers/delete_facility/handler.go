package delete_facility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities"
)

const (
	msgFacilityNotFound = "Facility not found."
	msgMissingID        = "Facility id is required."
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

// Handle DELETE /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	if err := h.service.DeleteFacility(r.Context(), facilityID); err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, facilities.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingID)

		default:
			h.logger.Error("DELETE /facilities/{id} - Failed: facility=%s: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /facilities/{id} - Facility deleted: id=%s", facilityID)
	w.WriteHeader(http.StatusNoContent)
}
