package get_day_schedule

import (
	getDaySchedule "github.com/m04kA/UniSport-ReservationService/internal/usecase/get_day_schedule"
)

// SlotResponse слот расписания на конкретную дату
type SlotResponse struct {
	SlotID      string `json:"slotId"`
	StartHour   string `json:"startHour"`
	EndHour     string `json:"endHour"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	FacilityID string         `json:"facilityId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			SlotID:      s.SlotID,
			StartHour:   s.StartHour,
			EndHour:     s.EndHour,
			IsAvailable: s.IsAvailable,
			IsBooked:    s.IsBooked,
		})
	}

	return &DayScheduleResponse{
		FacilityID: resp.FacilityID,
		Date:       resp.Date,
		Slots:      slots,
	}
}
