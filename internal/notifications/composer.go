package notifications

import (
	"strings"
	"time"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

// Формат времени в письмах
const mailTimeLayout = "Jan 2, 2006 15:04"

// Message готовое к отправке письмо
type Message struct {
	Subject string
	Text    string
}

// ComposeConfirmation собирает письмо-подтверждение созданного бронирования
func ComposeConfirmation(res *domain.Reservation, facilityName string) Message {
	details := reservationDetails(res, facilityName)

	lines := []string{
		"Hello,",
		"",
		"You created the following reservation:",
		"  - Facility: " + facilityName,
	}
	if timeLine := reservationTimeLine(res); timeLine != "" {
		lines = append(lines, timeLine)
	}
	lines = append(lines,
		"",
		"If you did not make this reservation, please contact the sports center administration.",
		"",
		"University Sports Center Reservation System",
	)

	return Message{
		Subject: `You created "` + details + `" reservation`,
		Text:    strings.Join(lines, "\n"),
	}
}

// ComposeCancellation собирает письмо об отмене бронирования
func ComposeCancellation(res *domain.Reservation, facilityName string) Message {
	details := reservationDetails(res, facilityName)

	lines := []string{
		"Hello,",
		"",
		"You cancelled the following reservation:",
		"  - Facility: " + facilityName,
	}
	if timeLine := reservationTimeLine(res); timeLine != "" {
		lines = append(lines, timeLine)
	}
	lines = append(lines,
		"",
		"The slot is available for booking again.",
		"",
		"University Sports Center Reservation System",
	)

	return Message{
		Subject: `You cancelled "` + details + `" reservation`,
		Text:    strings.Join(lines, "\n"),
	}
}

// ComposeNoShow собирает письмо о неявке и недельной блокировке
func ComposeNoShow(res *domain.Reservation, facilityName string) Message {
	details := reservationDetails(res, facilityName)

	lines := []string{
		"Hello,",
		"",
		"You did not attend the following session:",
		"  - Facility: " + facilityName,
	}
	if timeLine := reservationTimeLine(res); timeLine != "" {
		lines = append(lines, timeLine)
	}
	lines = append(lines,
		"",
		"According to the reservation policy, you do not have right to make reservations for the next week.",
		"",
		"If you believe this is a mistake, please contact the sports center administration.",
		"",
		"University Sports Center Reservation System",
	)

	return Message{
		Subject: `You did not attend "` + details + `" session`,
		Text:    strings.Join(lines, "\n"),
	}
}

// reservationDetails формирует короткое описание бронирования для темы письма
func reservationDetails(res *domain.Reservation, facilityName string) string {
	if res.StartTime.IsZero() || res.EndTime.IsZero() {
		return facilityName
	}
	return facilityName + " on " + formatTimeRange(res.StartTime, res.EndTime)
}

// reservationTimeLine формирует строку с временем сессии для тела письма
// Пустая строка, если у бронирования нет валидного времени
func reservationTimeLine(res *domain.Reservation) string {
	if res.StartTime.IsZero() || res.EndTime.IsZero() {
		return ""
	}
	return "  - Time: " + formatTimeRange(res.StartTime, res.EndTime)
}

func formatTimeRange(start, end time.Time) string {
	return start.Format(mailTimeLayout) + " - " + end.Format(mailTimeLayout)
}
