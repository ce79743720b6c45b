package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	facilityRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/facility"
	slotRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/slottemplate"
	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities/models"
)

// Service сервис администрирования объектов и шаблонов слотов
// Изменение шаблонов сбрасывает кэш расписания соответствующего объекта
type Service struct {
	facilityRepo FacilityRepository
	slotRepo     SlotTemplateRepository
	cache        SlotCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса
// cache может быть nil, тогда инвалидация пропускается
func NewService(
	facilityRepo FacilityRepository,
	slotRepo SlotTemplateRepository,
	cache SlotCache,
	logger Logger,
) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		slotRepo:     slotRepo,
		cache:        cache,
		logger:       logger,
	}
}

// ListFacilities получает все спортивные объекты
func (s *Service) ListFacilities(ctx context.Context) (*models.FacilityListResponse, error) {
	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListFacilities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFacilities - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacilityList(facilities), nil
}

// GetFacility получает спортивный объект по ID
func (s *Service) GetFacility(ctx context.Context, id string) (*models.FacilityResponse, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacility: facility %s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacility: repository error for facility %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetFacility - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// UpsertFacility создает или заменяет спортивный объект
// Новый объект получает сгенерированный id
func (s *Service) UpsertFacility(ctx context.Context, req *models.UpsertFacilityRequest) (*models.FacilityResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must be non-negative", ErrInvalidInput)
	}

	facility := &domain.Facility{
		ID:          req.ID,
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if facility.ID == "" {
		facility.ID = uuid.NewString()
	}

	saved, err := s.facilityRepo.Upsert(ctx, facility)
	if err != nil {
		s.logger.Error("UpsertFacility: repository error for facility %s: %v", facility.ID, err)
		return nil, fmt.Errorf("%w: UpsertFacility - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertFacility: saved facility %s (%s)", saved.ID, saved.Name)
	return models.FromDomainFacility(saved), nil
}

// DeleteFacility удаляет спортивный объект вместе с его шаблонами слотов
// и сбрасывает кэш расписания
func (s *Service) DeleteFacility(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if _, err := s.facilityRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("DeleteFacility: facility %s not found", id)
			return ErrFacilityNotFound
		}
		s.logger.Error("DeleteFacility: repository error for facility %s: %v", id, err)
		return fmt.Errorf("%w: DeleteFacility - repository error: %v", ErrInternal, err)
	}

	// Шаблоны ссылаются на объект, удаляем их первыми
	if err := s.slotRepo.DeleteByFacility(ctx, id); err != nil {
		s.logger.Error("DeleteFacility: failed to delete slot templates for facility %s: %v", id, err)
		return fmt.Errorf("%w: DeleteFacility - repository error: %v", ErrInternal, err)
	}

	if err := s.facilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			return ErrFacilityNotFound
		}
		s.logger.Error("DeleteFacility: failed to delete facility %s: %v", id, err)
		return fmt.Errorf("%w: DeleteFacility - repository error: %v", ErrInternal, err)
	}

	s.invalidateSchedule(ctx, id)

	s.logger.Info("DeleteFacility: deleted facility %s", id)
	return nil
}

// ListFacilitySlots получает все шаблоны слотов объекта
func (s *Service) ListFacilitySlots(ctx context.Context, facilityID string) (*models.SlotTemplateListResponse, error) {
	if facilityID == "" {
		return nil, fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	templates, err := s.slotRepo.ListByFacility(ctx, facilityID)
	if err != nil {
		s.logger.Error("ListFacilitySlots: repository error for facility %s: %v", facilityID, err)
		return nil, fmt.Errorf("%w: ListFacilitySlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotTemplateList(templates), nil
}

// UpsertSlotTemplate создает или заменяет шаблон слота
// Новый шаблон получает сгенерированный id; кэш расписания объекта сбрасывается
func (s *Service) UpsertSlotTemplate(ctx context.Context, req *models.UpsertSlotTemplateRequest) (*models.SlotTemplateResponse, error) {
	tpl := req.ToDomain()

	if err := validateSlotTemplate(tpl); err != nil {
		s.logger.Warn("UpsertSlotTemplate: validation failed: %v", err)
		return nil, err
	}

	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
	}

	saved, err := s.slotRepo.Upsert(ctx, tpl)
	if err != nil {
		s.logger.Error("UpsertSlotTemplate: repository error for template %s: %v", tpl.ID, err)
		return nil, fmt.Errorf("%w: UpsertSlotTemplate - repository error: %v", ErrInternal, err)
	}

	s.invalidateSchedule(ctx, saved.FacilityID)

	s.logger.Info("UpsertSlotTemplate: saved template %s for facility %s", saved.ID, saved.FacilityID)
	return models.FromDomainSlotTemplate(saved), nil
}

// DeleteSlotTemplate удаляет шаблон слота и сбрасывает кэш расписания
func (s *Service) DeleteSlotTemplate(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	tpl, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotTemplateNotFound) {
			s.logger.Warn("DeleteSlotTemplate: template %s not found", id)
			return ErrSlotTemplateNotFound
		}
		s.logger.Error("DeleteSlotTemplate: repository error for template %s: %v", id, err)
		return fmt.Errorf("%w: DeleteSlotTemplate - repository error: %v", ErrInternal, err)
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotTemplateNotFound) {
			return ErrSlotTemplateNotFound
		}
		s.logger.Error("DeleteSlotTemplate: failed to delete template %s: %v", id, err)
		return fmt.Errorf("%w: DeleteSlotTemplate - repository error: %v", ErrInternal, err)
	}

	s.invalidateSchedule(ctx, tpl.FacilityID)

	s.logger.Info("DeleteSlotTemplate: deleted template %s", id)
	return nil
}

// invalidateSchedule сбрасывает кэш расписания объекта, best-effort
func (s *Service) invalidateSchedule(ctx context.Context, facilityID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFacility(ctx, facilityID); err != nil {
		s.logger.Warn("invalidateSchedule: cache invalidation failed for facility %s: %v", facilityID, err)
	}
}

// validateSlotTemplate проверяет инварианты шаблона слота
func validateSlotTemplate(tpl *domain.SlotTemplate) error {
	if tpl.FacilityID == "" {
		return fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	if tpl.DayOfWeek < domain.MinDayOfWeek || tpl.DayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be between %d and %d", ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	if !tpl.ValidHours() {
		return fmt.Errorf("%w: endHour must be after startHour, both in HH:MM format", ErrInvalidInput)
	}

	return nil
}
