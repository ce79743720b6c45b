package get_day_schedule

// Request модель запроса расписания объекта на дату
type Request struct {
	FacilityID string // ID спортивного объекта
	Date       string // Календарная дата в формате "2006-01-02"
}

// Slot слот расписания, спроецированный на конкретную дату
type Slot struct {
	SlotID      string // ID шаблона слота
	StartHour   string // "HH:MM"
	EndHour     string // "HH:MM"
	IsAvailable bool   // Шаблон включен для бронирования
	IsBooked    bool   // Идентичность (слот, дата) уже занята
}

// Response модель ответа с расписанием на день
type Response struct {
	FacilityID string
	Date       string
	Slots      []Slot
}
