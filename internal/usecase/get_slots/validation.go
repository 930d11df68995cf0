package get_slots

import (
	"fmt"
	"time"
)

// validateDate проверяет, что дата не в прошлом и не дальше горизонта записи
// Сравниваются только календарные даты в зоне now
func validateDate(requestDate, now time.Time, daysAhead int) error {
	today := startOfDay(now)
	day := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return ErrDateInPast
	}

	if daysAhead == 0 {
		return nil
	}

	if day.After(today.AddDate(0, 0, daysAhead)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, daysAhead)
	}

	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
