package get_day_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

// UseCase use case расписания объекта на конкретную дату
// Шаблоны дня недели проецируются на дату, занятость определяется
// существованием бронирования с детерминированной идентичностью:
// кандидатные id вычисляются локально, один запрос к леджеру закрывает день
type UseCase struct {
	slotRepo        SlotTemplateRepository
	reservationRepo ReservationRepository
	cache           SlotCache
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil - тогда шаблоны всегда читаются из хранилища
func NewUseCase(
	slotRepo SlotTemplateRepository,
	reservationRepo ReservationRepository,
	cache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.FacilityID == "" {
		return nil, fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetDaySchedule: malformed date %q", req.Date)
		return nil, fmt.Errorf("%w: malformed date %q", ErrInvalidDate, req.Date)
	}

	dayOfWeek := int(date.Weekday())

	// 2. Получаем шаблоны дня недели (cache-aside)
	templates, err := uc.dayTemplates(ctx, req.FacilityID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list templates for facility %s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to list slot templates: %v", ErrInternal, err)
	}

	// 3. Студенты видят только видимые шаблоны
	visible := make([]*domain.SlotTemplate, 0, len(templates))
	for _, tpl := range templates {
		if tpl.IsVisible {
			visible = append(visible, tpl)
		}
	}

	// 4. Вычисляем кандидатные идентичности и спрашиваем леджер о занятости
	ids := make([]string, 0, len(visible))
	for _, tpl := range visible {
		ids = append(ids, domain.ReservationID(tpl.ID, req.Date))
	}

	reservations, err := uc.reservationRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to check occupancy for facility %s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to check occupancy: %v", ErrInternal, err)
	}

	// Бронирование в любом статусе занимает идентичность
	occupied := make(map[string]struct{}, len(reservations))
	for _, res := range reservations {
		occupied[res.ID] = struct{}{}
	}

	// 5. Собираем ответ
	slots := make([]Slot, 0, len(visible))
	for _, tpl := range visible {
		_, booked := occupied[domain.ReservationID(tpl.ID, req.Date)]
		slots = append(slots, Slot{
			SlotID:      tpl.ID,
			StartHour:   tpl.StartHour.String(),
			EndHour:     tpl.EndHour.String(),
			IsAvailable: tpl.IsAvailable,
			IsBooked:    booked,
		})
	}

	return &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}

// dayTemplates читает шаблоны дня недели через кэш
// Ошибки кэша только логируются: источником истины остаётся хранилище
func (uc *UseCase) dayTemplates(ctx context.Context, facilityID string, dayOfWeek int) ([]*domain.SlotTemplate, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetDayTemplates(ctx, facilityID, dayOfWeek)
		if err != nil {
			uc.logger.Warn("GetDaySchedule: cache read failed for facility %s: %v", facilityID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	templates, err := uc.slotRepo.ListByFacilityAndDay(ctx, facilityID, dayOfWeek)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetDayTemplates(ctx, facilityID, dayOfWeek, templates); err != nil {
			uc.logger.Warn("GetDaySchedule: cache write failed for facility %s: %v", facilityID, err)
		}
	}

	return templates, nil
}
