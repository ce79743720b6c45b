package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/api/middleware"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations/models"
)

const (
	msgAccessDenied  = "You can only view your own reservation history."
	msgInvalidStatus = "Unknown reservation status filter."
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

// Handle GET /api/v1/users/{userId}/reservations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["userId"]
	userID := middleware.UserID(r.Context())

	// Обычный пользователь видит только собственную историю
	if !middleware.IsAdmin(r.Context()) && targetUserID != userID {
		h.logger.Warn("GET /users/{id}/reservations - Access denied: target=%s, user=%s", targetUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetUserReservationsRequest{UserID: targetUserID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/reservations - Failed: user=%s: %v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
