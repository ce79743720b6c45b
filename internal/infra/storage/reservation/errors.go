package reservation

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrReservationExists возвращается, когда идентичность (слот, дата) уже занята
	ErrReservationExists = errors.New("reservation.repository: reservation already exists for this slot and date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

// isUniqueViolation проверяет, что ошибка — нарушение уникальности ключа
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}

// IsSerializationFailure проверяет, что ошибка — конфликт SERIALIZABLE транзакций
// Такую ошибку проигравшая сторона получает при коммите, когда параллельная
// транзакция успела занять ту же идентичность
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgSerializationFailure
}
