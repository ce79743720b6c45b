package domain

import (
	"github.com/m04kA/UniSport-ReservationService/pkg/types"
)

// SlotTemplate represents a recurring weekly availability unit of a facility
// Templates are created by administrators and are read-only for the booking flow
type SlotTemplate struct {
	ID          string
	FacilityID  string
	DayOfWeek   int              // 0 (Sunday) - 6 (Saturday)
	StartHour   types.TimeString // "HH:MM"
	EndHour     types.TimeString // "HH:MM"
	IsAvailable bool             // template enabled for booking
	IsVisible   bool             // shown to students
}

// IsBookable returns true if the template is both enabled and visible
func (s *SlotTemplate) IsBookable() bool {
	return s.IsAvailable && s.IsVisible
}

// ValidHours returns true if the template's time window is well-formed
// Invariant: endHour > startHour
func (s *SlotTemplate) ValidHours() bool {
	if s.StartHour.Validate() != nil || s.EndHour.Validate() != nil {
		return false
	}
	return s.EndHour.IsAfter(s.StartHour)
}
