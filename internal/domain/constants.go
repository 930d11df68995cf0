package domain

// Значения по умолчанию для расписания записи
const (
	DefaultMaxBookingsPerSlot = 2
	DefaultCalendarDaysAhead  = 30
	DefaultDayStart           = "09:00"
	DefaultDayEnd             = "17:00"
	DefaultSlotStepMinutes    = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Тексты push-уведомлений по умолчанию (когда payload пустой или битый)
const (
	DefaultNotificationTitle   = "Уведомление"
	DefaultNotificationMessage = "У вас новое уведомление"
)

// Причины недоступности слота, показываемые в виджете
const (
	ReasonTimePassed = "time has passed"
	ReasonTimeTaken  = "time is taken"
)
