package userdirectory

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в справочнике
	ErrUserNotFound = errors.New("user not found in directory")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userdirectory client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что справочник пользователей недоступен: уведомление
	// пропускается, само бронирование не затрагивается
	ErrServiceDegraded = errors.New("userdirectory unavailable: graceful degradation applied")
)
