package create_reservation

import "errors"

var (
	// ErrSlotNotFound возвращается, когда шаблон слота не найден
	ErrSlotNotFound = errors.New("create_reservation: slot template not found")

	// ErrSlotUnavailable возвращается, когда шаблон отключен или скрыт от студентов
	ErrSlotUnavailable = errors.New("create_reservation: slot is not available for booking")

	// ErrAlreadyReserved возвращается, когда идентичность (слот, дата) уже занята
	// Бронирование в любом статусе (включая отменённое) продолжает занимать идентичность
	ErrAlreadyReserved = errors.New("create_reservation: slot is already reserved for the selected day")

	// ErrInvalidTime возвращается при некорректной дате или времени слота
	ErrInvalidTime = errors.New("create_reservation: invalid date or time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
