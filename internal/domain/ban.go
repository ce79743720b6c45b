package domain

import "time"

// BanReasonNotAttended причина бана за неявку на бронирование
const BanReasonNotAttended = "not_attended"

// ReservationBan represents a per-user booking penalty window
// Written by the no-show transition; enforcement on booking is the UI's job
type ReservationBan struct {
	UserID       string
	BlockedUntil time.Time
	Reason       string
	UpdatedAt    time.Time
}

// IsActiveAt returns true if the ban is still in effect at the given moment
func (b *ReservationBan) IsActiveAt(now time.Time) bool {
	return now.Before(b.BlockedUntil)
}
