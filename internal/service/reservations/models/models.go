package models

import (
	"errors"
	"time"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetUserReservationsRequest запрос истории бронирований пользователя
type GetUserReservationsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetFacilityReservationsRequest запрос бронирований спортивного объекта
type GetFacilityReservationsRequest struct {
	FacilityID string     `json:"facilityId"`
	Status     *string    `json:"status,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate    *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetFacilityReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		FacilityID: &r.FacilityID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
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

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// BanResponse ответ с данными блокировки за неявку
type BanResponse struct {
	UserID       string    `json:"userId"`
	BlockedUntil time.Time `json:"blockedUntil"`
	Reason       string    `json:"reason"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		FacilityID: r.FacilityID,
		SlotID:     r.SlotID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out}
}

// FromDomainBan конвертирует domain модель блокировки в DTO
func FromDomainBan(b *domain.ReservationBan) *BanResponse {
	if b == nil {
		return nil
	}

	return &BanResponse{
		UserID:       b.UserID,
		BlockedUntil: b.BlockedUntil,
		Reason:       b.Reason,
		UpdatedAt:    b.UpdatedAt,
	}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	switch status := domain.ReservationStatus(s); status {
	case domain.StatusActive, domain.StatusCancelled, domain.StatusCompleted, domain.StatusNotAttended:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
