package get_user_ban

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/api/middleware"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations"
)

const (
	msgBanNotFound  = "No reservation ban for this user."
	msgAccessDenied = "You can only view your own reservation ban."
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

// Handle GET /api/v1/users/{userId}/ban
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	targetUserID := mux.Vars(r)["userId"]
	requesterID := middleware.UserID(r.Context())
	isAdmin := middleware.IsAdmin(r.Context())

	result, err := h.service.GetUserBan(r.Context(), targetUserID, requesterID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrBanNotFound):
			handlers.RespondNotFound(w, msgBanNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/ban - Access denied: target=%s, user=%s", targetUserID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, "User id is required.")

		default:
			h.logger.Error("GET /users/{id}/ban - Failed: user=%s: %v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
