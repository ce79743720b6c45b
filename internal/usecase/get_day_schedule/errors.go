package get_day_schedule

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной календарной дате
	ErrInvalidDate = errors.New("get_day_schedule: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_schedule: internal error")
)
