package facilities

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда спортивный объект не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrSlotTemplateNotFound возвращается, когда шаблон слота не найден
	ErrSlotTemplateNotFound = errors.New("slot template not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
