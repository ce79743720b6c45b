package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/slottemplate"
)

// UseCase use case создания бронирования
// Гарантия "не более одного бронирования на (слот, дату)" достигается
// детерминированной идентичностью + атомарной вставкой в сериализуемой
// транзакции: проверка занятости и сама запись бьются об один и тот же ключ
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotTemplateRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotTemplateRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, slot=%s, date=%s", req.UserID, req.SlotID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем календарную дату
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateReservation: date parsing failed: %v", err)
		return nil, err
	}

	// 3. Получаем шаблон слота
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotTemplateNotFound) {
			uc.logger.Warn("CreateReservation: slot template %s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateReservation: failed to get slot template %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot template: %v", ErrInternal, err)
	}

	// 4. Шаблон должен быть включен и виден студентам
	if !slot.IsBookable() {
		uc.logger.Warn("CreateReservation: slot template %s is not bookable", req.SlotID)
		return nil, ErrSlotUnavailable
	}

	// 5. Совмещаем время шаблона с датой в абсолютные метки времени
	startTime, err := slot.StartHour.OnDate(date)
	if err != nil {
		uc.logger.Warn("CreateReservation: malformed start hour for slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	endTime, err := slot.EndHour.OnDate(date)
	if err != nil {
		uc.logger.Warn("CreateReservation: malformed end hour for slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// 6. Вычисляем детерминированную идентичность бронирования
	reservationID := domain.ReservationID(req.SlotID, req.Date)

	// Переменная для хранения результата
	var result *domain.Reservation

	// 7. Атомарное "создать, если отсутствует" в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Проверяем занятость идентичности
		// Бронирование в любом статусе занимает пару (слот, дата)
		_, err := uc.reservationRepo.GetByID(txCtx, reservationID)
		if err == nil {
			uc.logger.Warn("CreateReservation: identity %s already occupied", reservationID)
			return ErrAlreadyReserved
		}
		if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: failed to check identity %s: %v", reservationID, err)
			return fmt.Errorf("%w: failed to check identity: %v", ErrInternal, err)
		}

		// 7.2. Записываем новое бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ID:         reservationID,
			UserID:     req.UserID,
			FacilityID: slot.FacilityID,
			SlotID:     req.SlotID,
			StartTime:  startTime,
			EndTime:    endTime,
			Status:     domain.StatusActive,
			CreatedAt:  uc.timeProvider.Now(),
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationExists) {
				uc.logger.Warn("CreateReservation: lost insert race for identity %s", reservationID)
				return ErrAlreadyReserved
			}
			uc.logger.Error("CreateReservation: failed to create reservation %s: %v", reservationID, err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Проигравшая конкурирующая транзакция узнаёт о конфликте на коммите
		if reservationRepo.IsSerializationFailure(err) {
			uc.logger.Warn("CreateReservation: serialization conflict for identity %s", reservationID)
			return nil, ErrAlreadyReserved
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation %s", result.ID)

	// 8. Подтверждение по почте строго после коммита, best-effort
	uc.notifier.NotifyReservationCreated(ctx, result)

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		FacilityID: result.FacilityID,
		SlotID:     result.SlotID,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
	}, nil
}
