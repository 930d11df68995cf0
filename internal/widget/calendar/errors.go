package calendar

import "errors"

var (
	// ErrDayDisabled возвращается при клике по прошедшей дате
	ErrDayDisabled = errors.New("calendar: day is in the past")

	// ErrDayNotFound возвращается, когда дня нет в отображаемом месяце
	ErrDayNotFound = errors.New("calendar: day is not in the displayed month")

	// ErrNoDateSelected возвращается при выборе времени до выбора даты
	ErrNoDateSelected = errors.New("calendar: no date selected")
)
