package set_reservation_status

// Request модель запроса на смену статуса бронирования администратором
type Request struct {
	ReservationID string // Детерминированный ID бронирования
	Status        string // Целевой статус: "completed" или "not_attended"
}
