package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-CampBooking/internal/widget/calendar"
	"github.com/m04kA/SMC-CampBooking/internal/widget/selection"
)

// terminalPresenter выводит состояние виджета в терминал
type terminalPresenter struct {
	out         io.Writer
	formVisible bool
	formTime    string
}

func (p *terminalPresenter) SetDateLabel(label string) {
	fmt.Fprintf(p.out, "Выбрана дата: %s\n", label)
}

func (p *terminalPresenter) ShowSlots() {}

func (p *terminalPresenter) HideForm() {
	p.formVisible = false
}

func (p *terminalPresenter) SetTimeValue(t string) {
	p.formTime = t
}

func (p *terminalPresenter) Show() {
	p.formVisible = true
}

func (p *terminalPresenter) ScrollIntoView() {
	fmt.Fprintf(p.out, "Форма бронирования открыта, время: %s\n", p.formTime)
}

func (p *terminalPresenter) ShowError(msg string) {
	fmt.Fprintf(p.out, "Ошибка: %s\n", msg)
}

func (p *terminalPresenter) printGrid(g calendar.Grid) {
	fmt.Fprintf(p.out, "\n%s\nПн Вт Ср Чт Пт Сб Вс\n", g.Title)

	var b strings.Builder
	col := 0
	for i := 0; i < g.LeadingBlanks; i++ {
		b.WriteString("   ")
		col++
	}
	for _, c := range g.Cells {
		switch {
		case c.Selected:
			fmt.Fprintf(&b, "[%d]", c.Day)
		case c.Disabled:
			b.WriteString(" ·")
			b.WriteString(" ")
		default:
			fmt.Fprintf(&b, "%2d ", c.Day)
		}
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	fmt.Fprintln(p.out, strings.TrimRight(b.String(), " "))
}

func (p *terminalPresenter) printBlocks(blocks []selection.Block) {
	if len(blocks) == 0 {
		fmt.Fprintln(p.out, "Нет доступного времени")
		return
	}
	for _, b := range blocks {
		marker := "+"
		switch {
		case b.Disabled:
			marker = "x"
		case b.Expanded:
			marker = "-"
		}
		fmt.Fprintf(p.out, "%s %s\n", marker, b.Label)
		if !b.Expanded {
			continue
		}
		for _, l := range b.Leaves {
			switch {
			case l.Selected:
				fmt.Fprintf(p.out, "    > %s\n", l.Time)
			case l.Available:
				fmt.Fprintf(p.out, "      %s\n", l.Time)
			default:
				fmt.Fprintf(p.out, "      %s (%s)\n", l.Time, l.Reason)
			}
		}
	}
}
