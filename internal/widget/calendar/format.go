package calendar

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// родительный падеж для "1 июня"
var monthNamesGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var weekdayNames = [...]string{
	"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
}

// FormatMonthTitle заголовок месяца: "Июнь 2024"
func FormatMonthTitle(m Month) string {
	return fmt.Sprintf("%s %d", monthNames[m.Month-1], m.Year)
}

// FormatDisplayDate дата для пользователя: "суббота, 1 июня 2024 г."
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d г.",
		weekdayNames[t.Weekday()], t.Day(), monthNamesGenitive[t.Month()-1], t.Year())
}
