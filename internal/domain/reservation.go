package domain

import "time"

// ReservationStatus lifecycle status of a reservation
type ReservationStatus string

const (
	// StatusActive the only non-terminal status; every reservation starts here
	StatusActive ReservationStatus = "active"
	// StatusCancelled the student released the slot before the session
	StatusCancelled ReservationStatus = "cancelled"
	// StatusCompleted an administrator confirmed attendance
	StatusCompleted ReservationStatus = "completed"
	// StatusNotAttended an administrator recorded a no-show
	StatusNotAttended ReservationStatus = "not_attended"
)

// Reservation a booked slot occurrence for a concrete date
// Identity is derived, never generated: two requests for the same slot and
// date always collide on the same primary key
type Reservation struct {
	ID         string // "<slotID>_<YYYY-MM-DD>"
	UserID     string
	FacilityID string
	SlotID     string
	StartTime  time.Time
	EndTime    time.Time
	Status     ReservationStatus
	CreatedAt  time.Time
}

// ReservationID derives the deterministic reservation identity
// The identity doubles as the exclusivity lock: inserting it twice for the
// same slot and date violates the primary key
func ReservationID(slotID, date string) string {
	return slotID + "_" + date
}

// IsActive reports whether the reservation can still be acted upon
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsTerminal reports whether the reservation reached a final status
func (r *Reservation) IsTerminal() bool {
	return r.Status != StatusActive
}

// CanTransitionTo reports whether the status transition is allowed
// The only legal moves are active -> cancelled / completed / not_attended;
// terminal statuses admit no further transitions
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	if r.Status != StatusActive {
		return false
	}
	switch target {
	case StatusCancelled, StatusCompleted, StatusNotAttended:
		return true
	default:
		return false
	}
}

// ReservationsFilter optional criteria for listing reservations
// Nil fields are ignored; StartDate/EndDate bound the reservation start time
type ReservationsFilter struct {
	UserID     *string
	FacilityID *string
	SlotID     *string
	Status     *ReservationStatus
	StartDate  *time.Time
	EndDate    *time.Time
}
