package get_facility_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/UniSport-ReservationService/internal/api/handlers"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidFilter = "Invalid status or period filter, expected dates in YYYY-MM-DD format."

	dateLayout = "2006-01-02"
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

// Handle GET /api/v1/facilities/{facilityId}/reservations?status=&startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]
	query := r.URL.Query()

	req := &models.GetFacilityReservationsRequest{FacilityID: facilityID}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("startDate"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.StartDate = &start
	}
	if raw := query.Get("endDate"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		// Конец периода включает весь указанный день
		end = end.Add(24*time.Hour - time.Nanosecond)
		req.EndDate = &end
	}

	result, err := h.service.GetFacilityReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /facilities/{id}/reservations - Failed: facility=%s: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
