package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/UniSport-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAlreadyReserved    = "This slot is already reserved for the selected day."
	msgInvalidTime        = "Invalid date or time, expected date in YYYY-MM-DD format."
	msgSlotNotFound       = "Slot not found."
	msgSlotUnavailable    = "This slot is not available for booking."
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrAlreadyReserved):
			h.logger.Warn("POST /reservations - Already reserved: slot=%s, date=%s", req.SlotID, req.Date)
			handlers.RespondConflict(w, msgAlreadyReserved)

		case errors.Is(err, createReservation.ErrInvalidTime),
			errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: slot=%s, date=%s: %v", req.SlotID, req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: slot=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: slot=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user=%s, slot=%s: %v",
				userID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, user=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
