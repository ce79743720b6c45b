package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationID(t *testing.T) {
	t.Run("deterministic derivation", func(t *testing.T) {
		assert.Equal(t, "S1_2024-06-03", ReservationID("S1", "2024-06-03"))
	})

	t.Run("same inputs always produce the same id", func(t *testing.T) {
		first := ReservationID("slot-abc", "2025-01-15")
		second := ReservationID("slot-abc", "2025-01-15")
		assert.Equal(t, first, second)
	})

	t.Run("different dates produce different ids", func(t *testing.T) {
		assert.NotEqual(t,
			ReservationID("S1", "2024-06-03"),
			ReservationID("S1", "2024-06-04"),
		)
	})
}

func TestReservation_CanTransitionTo(t *testing.T) {
	t.Run("active can transition to every terminal status", func(t *testing.T) {
		for _, target := range TerminalStatuses {
			r := &Reservation{Status: StatusActive}
			assert.True(t, r.CanTransitionTo(target), "active -> %s", target)
		}
	})

	t.Run("terminal statuses allow no transitions at all", func(t *testing.T) {
		targets := []ReservationStatus{StatusActive, StatusCancelled, StatusCompleted, StatusNotAttended}
		for _, from := range TerminalStatuses {
			for _, target := range targets {
				r := &Reservation{Status: from}
				assert.False(t, r.CanTransitionTo(target), "%s -> %s must be rejected", from, target)
			}
		}
	})

	t.Run("active cannot transition to active", func(t *testing.T) {
		r := &Reservation{Status: StatusActive}
		assert.False(t, r.CanTransitionTo(StatusActive))
	})
}

func TestSlotTemplate_ValidHours(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		s := &SlotTemplate{StartHour: "09:00", EndHour: "10:00"}
		assert.True(t, s.ValidHours())
	})

	t.Run("end before start", func(t *testing.T) {
		s := &SlotTemplate{StartHour: "10:00", EndHour: "09:00"}
		assert.False(t, s.ValidHours())
	})

	t.Run("zero-length window", func(t *testing.T) {
		s := &SlotTemplate{StartHour: "09:00", EndHour: "09:00"}
		assert.False(t, s.ValidHours())
	})

	t.Run("malformed hour", func(t *testing.T) {
		s := &SlotTemplate{StartHour: "9am", EndHour: "10:00"}
		assert.False(t, s.ValidHours())
	})
}
