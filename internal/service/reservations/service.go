package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	banRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/ban"
	reservationRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations/models"
)

// Service сервис чтения бронирований и блокировок
// Все операции чистые чтения, порядок списков стабилен (start_time, id)
type Service struct {
	reservationRepo ReservationRepository
	banRepo         BanRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, banRepo BanRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		banRepo:         banRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id, userID string, isAdmin bool) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation %s for user %s", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation %s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && res.UserID != userID {
		s.logger.Warn("GetByID: access denied for user %s to reservation %s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user %s, status=%v", req.UserID, req.Status)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	filter := domain.ReservationsFilter{UserID: &req.UserID}
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status %q for user %s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user %s", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetFacilityReservations получает бронирования спортивного объекта
// Админская выборка с фильтрацией по статусу и периоду
func (s *Service) GetFacilityReservations(ctx context.Context, req *models.GetFacilityReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetFacilityReservations: fetching reservations for facility %s", req.FacilityID)

	if req.FacilityID == "" {
		return nil, fmt.Errorf("%w: facilityID is required", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityReservations: invalid status %v for facility %s", req.Status, req.FacilityID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityReservations: repository error for facility %s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityReservations: fetched %d reservations for facility %s", len(reservations), req.FacilityID)
	return models.FromDomainReservationList(reservations), nil
}

// GetUserBan получает текущую блокировку пользователя за неявку
// Ядро бронирования блокировки не читает - это выборка для UI,
// пользователь видит только свою, администратор - любую
func (s *Service) GetUserBan(ctx context.Context, userID, requesterID string, isAdmin bool) (*models.BanResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if !isAdmin && userID != requesterID {
		s.logger.Warn("GetUserBan: access denied for user %s to ban of %s", requesterID, userID)
		return nil, ErrAccessDenied
	}

	ban, err := s.banRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, banRepo.ErrBanNotFound) {
			return nil, ErrBanNotFound
		}
		s.logger.Error("GetUserBan: repository error for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBan - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBan(ban), nil
}
