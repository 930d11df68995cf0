package get_slots

import (
	"errors"

	"github.com/m04kA/SMC-CampBooking/pkg/types"
)

// generateTimes генерирует начала слотов с шагом step от start, пока время раньше end
func generateTimes(start, end types.TimeString, step int) ([]types.TimeString, error) {
	if step <= 0 {
		return nil, errors.New("slot step must be positive")
	}

	times := make([]types.TimeString, 0)
	current := start
	for current.IsBefore(end) {
		times = append(times, current)

		next, err := current.AddMinutes(step)
		if errors.Is(err, types.ErrTimeOverflow) {
			break
		}
		if err != nil {
			return nil, err
		}
		current = next
	}

	return times, nil
}

// buildSlots проставляет заполненность: слот доступен, пока подтвержденных записей меньше max
func buildSlots(times []types.TimeString, counts map[types.TimeString]int, max int) []Slot {
	slots := make([]Slot, len(times))
	for i, t := range times {
		count := counts[t]
		slots[i] = Slot{
			Time:      t,
			Available: count < max,
			Count:     count,
			Max:       max,
		}
	}
	return slots
}
