package get_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountConfirmedByDate считает подтвержденные бронирования на дату по слотам
	CountConfirmedByDate(ctx context.Context, date time.Time) (map[types.TimeString]int, error)
}

// Metrics учет отданных слотов
type Metrics interface {
	ObserveSlots(available, taken int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
