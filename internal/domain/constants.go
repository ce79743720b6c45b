package domain

// Календарная дата бронирования передается строкой
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default values for the no-show penalty
const (
	DefaultNoShowBanDays = 7
)

// Slot template field defaulting policy.
// Historical slot documents were written without the availability flags;
// a missing flag reads as enabled so that old templates keep working.
const (
	DefaultIsAvailable = true
	DefaultIsVisible   = true
)

// Day-of-week bounds for slot templates (0 = Sunday, 6 = Saturday)
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// TerminalStatuses список терминальных статусов бронирования
// Из терминального статуса переходы запрещены
var TerminalStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCompleted,
	StatusNotAttended,
}

// AdminAssignableStatuses статусы, которые администратор может выставить
// активному бронированию вручную
var AdminAssignableStatuses = []ReservationStatus{
	StatusCompleted,
	StatusNotAttended,
}
