package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// parseDate разбирает календарную дату запроса
// Некорректная дата ("2024-13-40") - пользовательская ошибка, не внутренняя
func parseDate(date string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date %q", ErrInvalidTime, date)
	}
	return parsed, nil
}
