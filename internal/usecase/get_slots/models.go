package get_slots

import (
	"time"

	"github.com/m04kA/SMC-CampBooking/pkg/types"
)

// Schedule параметры расписания слотов
type Schedule struct {
	DayStart           types.TimeString // первый слот дня
	DayEnd             types.TimeString // слоты начинаются строго раньше
	StepMinutes        int
	MaxBookingsPerSlot int
	DaysAhead          int // 0 - без ограничения
}

// Request запрос слотов на дату
type Request struct {
	Date time.Time
}

// Response слоты на дату в порядке времени
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot слот с заполненностью
type Slot struct {
	Time      types.TimeString
	Available bool
	Count     int
	Max       int
}
