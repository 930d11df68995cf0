// Package slotgroup превращает плоский список слотов от сервера в группы по часам.
//
// Преобразование чистое: входной срез не изменяется, результат зависит только от аргументов.
package slotgroup

import (
	"sort"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// GroupByHour маскирует прошедшие слоты и группирует слоты по часу
//
// Если isToday и час слота <= currentHour, слот помечается IsPast и становится недоступным,
// даже если сервер считает его свободным. Точность - до часа: слот 10:45 при текущем
// времени 10:05 тоже считается прошедшим.
//
// Группы отсортированы по возрастанию числового значения часа, внутри группы
// сохраняется порядок сервера.
func GroupByHour(slots []domain.TimeSlot, isToday bool, currentHour int) []domain.HourGroup {
	index := make(map[string]int)
	groups := make([]domain.HourGroup, 0)

	for _, raw := range slots {
		slot := MaskPast(raw, isToday, currentHour)
		hour := HourPrefix(slot.Time)

		i, ok := index[hour]
		if !ok {
			i = len(groups)
			index[hour] = i
			groups = append(groups, domain.HourGroup{Hour: hour})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return lessHour(groups[a].Hour, groups[b].Hour)
	})

	return groups
}

// MaskPast применяет правило "прошедшего слота" к одному слоту
func MaskPast(slot domain.TimeSlot, isToday bool, currentHour int) domain.TimeSlot {
	if !isToday {
		return slot
	}

	hour, err := strconv.Atoi(HourPrefix(slot.Time))
	if err != nil {
		return slot
	}

	if hour <= currentHour {
		slot.Available = false
		slot.IsPast = true
	}
	return slot
}

// HourPrefix возвращает часть строки до двоеточия ("09:30" -> "09")
func HourPrefix(t string) string {
	if i := strings.IndexByte(t, ':'); i >= 0 {
		return t[:i]
	}
	return t
}

// lessHour сравнивает часы численно, нечисловые значения уходят в конец
func lessHour(a, b string) bool {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return ai < bi
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
