package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// Navigator владеет состоянием календаря: отображаемый месяц, выбранная дата и время
type Navigator struct {
	mu     sync.Mutex
	state  State
	grid   Grid
	clock  TimeProvider
	loader SlotLoader
	layout Layout
	logger Logger
}

// NewNavigator создает календарь, открытый на текущем месяце
func NewNavigator(clock TimeProvider, loader SlotLoader, layout Layout, logger Logger) *Navigator {
	if clock == nil {
		clock = &RealTimeProvider{}
	}

	n := &Navigator{
		state:  State{DisplayedMonth: MonthOf(clock.Now())},
		clock:  clock,
		loader: loader,
		layout: layout,
		logger: logger,
	}
	n.grid = n.renderLocked()

	return n
}

// Navigate сдвигает отображаемый месяц и перерисовывает сетку
func (n *Navigator) Navigate(delta int) Grid {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.state.DisplayedMonth = n.state.DisplayedMonth.Add(delta)
	n.grid = n.renderLocked()

	return n.grid
}

// Render перерисовывает сетку отображаемого месяца
func (n *Navigator) Render() Grid {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.grid = n.renderLocked()
	return n.grid
}

// Grid возвращает последнюю отрисованную сетку
func (n *Navigator) Grid() Grid {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.grid
}

// State возвращает копию состояния
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Click обрабатывает клик по дню отображаемого месяца
// Прошедшие дни не кликабельны: "сегодня" пересчитывается на момент клика
func (n *Navigator) Click(ctx context.Context, day int) error {
	n.mu.Lock()
	cell, ok := n.grid.Cell(day)
	today := n.today()
	n.mu.Unlock()

	if !ok {
		return ErrDayNotFound
	}
	if cell.Disabled || cell.Date.Before(today) {
		return ErrDayDisabled
	}

	return n.SelectDate(ctx, cell.Date)
}

// SelectDate выбирает дату: сбрасывает выбранное время, подсвечивает ячейку,
// показывает контейнер слотов, прячет форму и запускает загрузку слотов
//
// Если подходящей активной ячейки в сетке нет (вызов из кода, другой месяц),
// подсветка пропускается, остальной сценарий выполняется.
func (n *Navigator) SelectDate(ctx context.Context, date time.Time) error {
	n.mu.Lock()
	loc := n.clock.Now().Location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	n.state.SelectedDate = day
	n.state.SelectedTimeSlot = ""
	n.grid = n.renderLocked()
	highlighted := len(n.grid.SelectedCells()) > 0
	n.mu.Unlock()

	if !highlighted {
		n.logger.Info("SelectDate: no active cell for %s, highlight skipped", day.Format(domain.DateFormat))
	}

	n.layout.SetDateLabel(FormatDisplayDate(day))
	n.layout.ShowSlots()
	n.layout.HideForm()

	return n.loader.Load(ctx, day)
}

// SetTimeSlot сохраняет выбранное время
func (n *Navigator) SetTimeSlot(t string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.state.HasSelectedDate() {
		return ErrNoDateSelected
	}
	n.state.SelectedTimeSlot = t
	return nil
}

// ClearTimeSlot сбрасывает выбранное время
func (n *Navigator) ClearTimeSlot() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.SelectedTimeSlot = ""
}

// today полночь текущего дня, считается заново при каждом вызове
func (n *Navigator) today() time.Time {
	now := n.clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (n *Navigator) renderLocked() Grid {
	today := n.today()
	month := n.state.DisplayedMonth
	first := month.FirstDay(today.Location())
	days := month.DaysIn()

	grid := Grid{
		Month:         month,
		Title:         FormatMonthTitle(month),
		FirstWeekday:  first.Weekday(),
		LeadingBlanks: (int(first.Weekday()) + 6) % 7,
		Cells:         make([]DayCell, days),
	}

	for d := 1; d <= days; d++ {
		date := first.AddDate(0, 0, d-1)
		disabled := date.Before(today)

		grid.Cells[d-1] = DayCell{
			Day:      d,
			Date:     date,
			Disabled: disabled,
			Selected: !disabled && n.state.HasSelectedDate() && date.Equal(n.state.SelectedDate),
			Today:    date.Equal(today),
		}
	}

	return grid
}
