package cancel_reservation

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID string // Детерминированный ID бронирования
	UserID        string // ID пользователя, запросившего отмену
	IsAdmin       bool   // Администратор может отменить чужое бронирование
}
