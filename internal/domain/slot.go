package domain

import "github.com/m04kA/SMC-CampBooking/pkg/types"

// TimeSlot слот записи так, как его видит виджет
// Time - строка HH:MM от сервера, IsPast вычисляется на клиенте
type TimeSlot struct {
	Time      string
	Available bool
	IsPast    bool
}

// HourGroup слоты одного часа в порядке, полученном от сервера
type HourGroup struct {
	Hour  string // "09"
	Slots []TimeSlot
}

// AllUnavailable true, если в группе нет ни одного свободного слота
func (g HourGroup) AllUnavailable() bool {
	for _, s := range g.Slots {
		if s.Available {
			return false
		}
	}
	return true
}

// SlotAvailability серверная загрузка слота
type SlotAvailability struct {
	Time  types.TimeString
	Count int // подтвержденных записей
	Max   int // вместимость слота
}

// IsAvailable true, если в слоте осталось место
func (s *SlotAvailability) IsAvailable() bool {
	return s.Count < s.Max
}
