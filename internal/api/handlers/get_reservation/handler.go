package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/api/middleware"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations"
)

const (
	msgReservationNotFound = "Reservation not found."
	msgAccessDenied        = "You can only view your own reservations."
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]
	userID := middleware.UserID(r.Context())
	isAdmin := middleware.IsAdmin(r.Context())

	result, err := h.service.GetByID(r.Context(), reservationID, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{id} - Access denied: id=%s, user=%s", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, "Reservation id is required.")

		default:
			h.logger.Error("GET /reservations/{id} - Failed: id=%s: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
