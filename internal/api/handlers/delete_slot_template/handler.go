package delete_slot_template

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities"
)

const (
	msgSlotTemplateNotFound = "Slot template not found."
	msgMissingID            = "Slot id is required."
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	if err := h.service.DeleteSlotTemplate(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, facilities.ErrSlotTemplateNotFound):
			handlers.RespondNotFound(w, msgSlotTemplateNotFound)

		case errors.Is(err, facilities.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingID)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed: slot=%s: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot template deleted: id=%s", slotID)
	w.WriteHeader(http.StatusNoContent)
}
