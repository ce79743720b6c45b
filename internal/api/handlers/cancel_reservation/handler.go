package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/api/middleware"
	cancelReservation "github.com/m04kA/UniSport-ReservationService/internal/usecase/cancel_reservation"
)

const (
	msgReservationNotFound = "Reservation no longer exists."
	msgNotActive           = "Only active reservations can be cancelled."
	msgAccessDenied        = "You can only cancel your own reservations."
	msgMissingID           = "Reservation id is required."
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]
	if reservationID == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	req := &cancelReservation.Request{
		ReservationID: reservationID,
		UserID:        middleware.UserID(r.Context()),
		IsAdmin:       middleware.IsAdmin(r.Context()),
	}

	if err := h.useCase.Execute(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrNotActive):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not active: id=%s", reservationID)
			handlers.RespondConflict(w, msgNotActive)

		case errors.Is(err, cancelReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: id=%s, user=%s",
				reservationID, req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingID)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed: id=%s: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: id=%s, user=%s",
		reservationID, req.UserID)
	w.WriteHeader(http.StatusNoContent)
}
