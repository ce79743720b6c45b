package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/UniSport-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SlotID string `json:"slotId"`
	Date   string `json:"date"` // "2024-06-03"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	FacilityID string    `json:"facilityId"`
	SlotID     string    `json:"slotId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID берется из аутентификационного контекста, не из тела
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) *createReservation.Request {
	return &createReservation.Request{
		UserID: userID,
		SlotID: r.SlotID,
		Date:   r.Date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		FacilityID: resp.FacilityID,
		SlotID:     resp.SlotID,
		StartTime:  resp.StartTime,
		EndTime:    resp.EndTime,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt,
	}
}
