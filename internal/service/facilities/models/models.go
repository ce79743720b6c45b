package models

import (
	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	"github.com/m04kA/UniSport-ReservationService/pkg/types"
)

// Request модели

// UpsertSlotTemplateRequest запрос на создание/замену шаблона слота
// Пустой ID означает создание нового шаблона
type UpsertSlotTemplateRequest struct {
	ID          string `json:"id,omitempty"`
	FacilityID  string `json:"facilityId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartHour   string `json:"startHour"` // "HH:MM"
	EndHour     string `json:"endHour"`   // "HH:MM"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
	IsVisible   *bool  `json:"isVisible,omitempty"`
}

// ToDomain конвертирует request в domain модель с применением дефолтов
func (r *UpsertSlotTemplateRequest) ToDomain() *domain.SlotTemplate {
	tpl := &domain.SlotTemplate{
		ID:          r.ID,
		FacilityID:  r.FacilityID,
		DayOfWeek:   r.DayOfWeek,
		StartHour:   types.TimeString(r.StartHour),
		EndHour:     types.TimeString(r.EndHour),
		IsAvailable: domain.DefaultIsAvailable,
		IsVisible:   domain.DefaultIsVisible,
	}

	if r.IsAvailable != nil {
		tpl.IsAvailable = *r.IsAvailable
	}
	if r.IsVisible != nil {
		tpl.IsVisible = *r.IsVisible
	}

	return tpl
}

// UpsertFacilityRequest запрос на создание/замену спортивного объекта
type UpsertFacilityRequest struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
}

// Response модели

// FacilityResponse ответ с данными спортивного объекта
type FacilityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
}

// FacilityListResponse ответ со списком спортивных объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// SlotTemplateResponse ответ с данными шаблона слота
type SlotTemplateResponse struct {
	ID          string `json:"id"`
	FacilityID  string `json:"facilityId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartHour   string `json:"startHour"`
	EndHour     string `json:"endHour"`
	IsAvailable bool   `json:"isAvailable"`
	IsVisible   bool   `json:"isVisible"`
}

// SlotTemplateListResponse ответ со списком шаблонов слотов
type SlotTemplateListResponse struct {
	Slots []SlotTemplateResponse `json:"slots"`
}

// Методы конвертации

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	return &FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Type:        f.Type,
		Capacity:    f.Capacity,
		Description: f.Description,
	}
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	out := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, *FromDomainFacility(f))
	}
	return &FacilityListResponse{Facilities: out}
}

// FromDomainSlotTemplate конвертирует domain модель в DTO
func FromDomainSlotTemplate(tpl *domain.SlotTemplate) *SlotTemplateResponse {
	if tpl == nil {
		return nil
	}

	return &SlotTemplateResponse{
		ID:          tpl.ID,
		FacilityID:  tpl.FacilityID,
		DayOfWeek:   tpl.DayOfWeek,
		StartHour:   tpl.StartHour.String(),
		EndHour:     tpl.EndHour.String(),
		IsAvailable: tpl.IsAvailable,
		IsVisible:   tpl.IsVisible,
	}
}

// FromDomainSlotTemplateList конвертирует список domain моделей в DTO
func FromDomainSlotTemplateList(templates []*domain.SlotTemplate) *SlotTemplateListResponse {
	out := make([]SlotTemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, *FromDomainSlotTemplate(tpl))
	}
	return &SlotTemplateListResponse{Slots: out}
}
