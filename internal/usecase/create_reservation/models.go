package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID string // ID студента
	SlotID string // ID шаблона слота
	Date   string // Календарная дата в формате "2006-01-02"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string    // Детерминированный ID бронирования
	UserID     string    // ID студента
	FacilityID string    // ID спортивного объекта
	SlotID     string    // ID шаблона слота
	StartTime  time.Time // Начало сессии
	EndTime    time.Time // Конец сессии
	Status     string    // Статус бронирования (всегда "active")
	CreatedAt  time.Time // Время создания
}
