package selection

// Form форма бронирования, которая открывается после выбора времени
type Form interface {
	SetTimeValue(t string)
	Show()
	ScrollIntoView()
}

// TimeSlotStore хранит выбранное время (владелец - календарь)
type TimeSlotStore interface {
	SetTimeSlot(t string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
