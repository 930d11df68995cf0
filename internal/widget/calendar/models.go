package calendar

import (
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// Month год и месяц, отображаемые в календаре
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf возвращает месяц, которому принадлежит t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Add сдвигает месяц на delta (может быть отрицательным)
func (m Month) Add(delta int) Month {
	return MonthOf(time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC))
}

// FirstDay первое число месяца в полночь
func (m Month) FirstDay(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// DaysIn количество дней в месяце
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// State состояние календаря
// SelectedTimeSlot выставляется только после выбора даты и сбрасывается при выборе новой
type State struct {
	DisplayedMonth   Month
	SelectedDate     time.Time // нулевое значение - дата не выбрана
	SelectedTimeSlot string
}

// HasSelectedDate true, если дата выбрана
func (s State) HasSelectedDate() bool {
	return !s.SelectedDate.IsZero()
}

// DayCell ячейка календарной сетки
type DayCell struct {
	Day      int
	Date     time.Time
	Disabled bool // дата раньше сегодняшней полуночи, обработчик клика не вешается
	Selected bool
	Today    bool
}

// ISODate дата ячейки в формате YYYY-MM-DD
func (c DayCell) ISODate() string {
	return c.Date.Format(domain.DateFormat)
}

// Clickable true, если по ячейке можно кликнуть
func (c DayCell) Clickable() bool {
	return !c.Disabled
}

// Grid отрисованная сетка месяца
type Grid struct {
	Month         Month
	Title         string
	FirstWeekday  time.Weekday
	LeadingBlanks int // пустые ячейки перед 1 числом (неделя с понедельника)
	Cells         []DayCell
}

// Cell возвращает ячейку по номеру дня
func (g Grid) Cell(day int) (DayCell, bool) {
	if day < 1 || day > len(g.Cells) {
		return DayCell{}, false
	}
	return g.Cells[day-1], true
}

// SelectedCells возвращает выделенные ячейки
func (g Grid) SelectedCells() []DayCell {
	selected := make([]DayCell, 0, 1)
	for _, c := range g.Cells {
		if c.Selected {
			selected = append(selected, c)
		}
	}
	return selected
}
