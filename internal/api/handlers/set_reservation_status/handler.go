package set_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	setReservationStatus "github.com/m04kA/UniSport-ReservationService/internal/usecase/set_reservation_status"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgReservationNotFound = "Reservation no longer exists."
	msgInvalidTransition   = "Only active reservations can change status."
	msgInvalidStatus       = "Status must be \"completed\" or \"not_attended\"."
)

type Handler struct {
	useCase SetReservationStatusUseCase
	logger  Logger
}

func NewHandler(useCase SetReservationStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq := &setReservationStatus.Request{
		ReservationID: reservationID,
		Status:        req.Status,
	}

	if err := h.useCase.Execute(r.Context(), ucReq); err != nil {
		switch {
		case errors.Is(err, setReservationStatus.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, setReservationStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: id=%s, status=%s",
				reservationID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, setReservationStatus.ErrInvalidStatus),
			errors.Is(err, setReservationStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid input: id=%s, status=%s",
				reservationID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed: id=%s: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status updated: id=%s, status=%s",
		reservationID, req.Status)
	w.WriteHeader(http.StatusNoContent)
}
