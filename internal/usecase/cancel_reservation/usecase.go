package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case отмены бронирования
// Статус перечитывается внутри транзакции: закэшированное клиентом
// состояние могло устареть, гонка двух переходов решается блокировкой строки
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelReservation: reservation=%s, user=%s", req.ReservationID, req.UserID)

	// 1. Валидация входных данных
	if req.ReservationID == "" {
		uc.logger.Warn("CancelReservation: empty reservation id")
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}
	if !req.IsAdmin && req.UserID == "" {
		uc.logger.Warn("CancelReservation: empty user id for reservation %s", req.ReservationID)
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	// Переменная для уведомления после коммита
	var cancelled *domain.Reservation

	// 2. Переход статуса в транзакции с блокировкой строки
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Перечитываем текущее состояние (FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: reservation %s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to get reservation %s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Отменить чужое бронирование может только администратор
		if !req.IsAdmin && res.UserID != req.UserID {
			uc.logger.Warn("CancelReservation: user %s is not the owner of reservation %s", req.UserID, req.ReservationID)
			return ErrAccessDenied
		}

		// 2.3. Проверяем допустимость перехода
		if !res.CanTransitionTo(domain.StatusCancelled) {
			uc.logger.Warn("CancelReservation: reservation %s has status %s, cannot cancel", req.ReservationID, res.Status)
			return ErrNotActive
		}

		// 2.4. Фиксируем новый статус
		if err := uc.reservationRepo.UpdateStatus(txCtx, req.ReservationID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CancelReservation: failed to update status for %s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		res.Status = domain.StatusCancelled
		cancelled = res
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelReservation: successfully cancelled reservation %s", req.ReservationID)

	// 3. Уведомление строго после коммита, best-effort
	uc.notifier.NotifyReservationCancelled(ctx, cancelled)

	return nil
}
