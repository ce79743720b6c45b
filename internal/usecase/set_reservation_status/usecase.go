package set_reservation_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case назначения терминального статуса администратором
// Переход и его побочные эффекты разделены: смена статуса коммитится в
// транзакции, блокировка и письмо о неявке выполняются после коммита
// и никогда не откатывают совершённый переход
type UseCase struct {
	reservationRepo ReservationRepository
	banRepo         BanRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger

	banEnabled bool
	banDays    int
}

// NewUseCase создает новый экземпляр use case
// banEnabled выключает запись блокировки, не трогая логику перехода
func NewUseCase(
	reservationRepo ReservationRepository,
	banRepo BanRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
	banEnabled bool,
	banDays int,
) *UseCase {
	if banDays <= 0 {
		banDays = domain.DefaultNoShowBanDays
	}

	return &UseCase{
		reservationRepo: reservationRepo,
		banRepo:         banRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		banEnabled:      banEnabled,
		banDays:         banDays,
	}
}

// Execute выполняет use case смены статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("SetReservationStatus: reservation=%s, status=%s", req.ReservationID, req.Status)

	// 1. Валидация входных данных
	if req.ReservationID == "" {
		uc.logger.Warn("SetReservationStatus: empty reservation id")
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	target, err := parseTargetStatus(req.Status)
	if err != nil {
		uc.logger.Warn("SetReservationStatus: invalid target status %q", req.Status)
		return err
	}

	// Переменная для побочных эффектов после коммита
	var updated *domain.Reservation

	// 2. Переход статуса в транзакции с блокировкой строки
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Перечитываем текущее состояние (FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("SetReservationStatus: reservation %s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("SetReservationStatus: failed to get reservation %s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Проверяем допустимость перехода
		if !res.CanTransitionTo(target) {
			uc.logger.Warn("SetReservationStatus: reservation %s has status %s, cannot set %s",
				req.ReservationID, res.Status, target)
			return ErrInvalidTransition
		}

		// 2.3. Фиксируем новый статус
		if err := uc.reservationRepo.UpdateStatus(txCtx, req.ReservationID, target); err != nil {
			uc.logger.Error("SetReservationStatus: failed to update status for %s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		res.Status = target
		updated = res
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("SetReservationStatus: reservation %s is now %s", req.ReservationID, target)

	// 3. Побочные эффекты неявки строго после коммита, best-effort
	if target == domain.StatusNotAttended {
		uc.applyNoShowEffects(ctx, updated)
	}

	return nil
}

// applyNoShowEffects записывает блокировку и отправляет письмо о неявке
// Сбой любого эффекта логируется и не влияет на совершённый переход
func (uc *UseCase) applyNoShowEffects(ctx context.Context, res *domain.Reservation) {
	if uc.banEnabled {
		now := uc.timeProvider.Now()
		ban := &domain.ReservationBan{
			UserID:       res.UserID,
			BlockedUntil: now.Add(time.Duration(uc.banDays) * 24 * time.Hour),
			Reason:       domain.BanReasonNotAttended,
		}

		if _, err := uc.banRepo.Upsert(ctx, ban); err != nil {
			uc.logger.Error("SetReservationStatus: failed to upsert ban for user %s: %v", res.UserID, err)
		} else {
			uc.logger.Info("SetReservationStatus: user %s is banned until %s", res.UserID, ban.BlockedUntil.Format(time.RFC3339))
		}
	}

	uc.notifier.NotifyNoShow(ctx, res)
}

// parseTargetStatus проверяет, что статус назначается администратором вручную
func parseTargetStatus(status string) (domain.ReservationStatus, error) {
	target := domain.ReservationStatus(status)
	for _, allowed := range domain.AdminAssignableStatuses {
		if target == allowed {
			return target, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
}
