package set_reservation_status

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("set_reservation_status: reservation not found")

	// ErrInvalidTransition возвращается при попытке перехода из неактивного статуса
	ErrInvalidTransition = errors.New("set_reservation_status: only active reservations can change status")

	// ErrInvalidStatus возвращается, когда целевой статус не назначается вручную
	ErrInvalidStatus = errors.New("set_reservation_status: invalid target status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_reservation_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_reservation_status: internal error")
)
