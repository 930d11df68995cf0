package picker

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// SlotFetcher получает слоты на дату в формате YYYY-MM-DD
type SlotFetcher interface {
	FetchSlots(ctx context.Context, date string) ([]domain.TimeSlot, error)
}

// Renderer отрисовывает сгруппированные слоты
type Renderer interface {
	Render(groups []domain.HourGroup)
}

// ErrorReporter показывает пользователю ошибку загрузки
type ErrorReporter interface {
	ShowError(msg string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учет отданных слотов
type Metrics interface {
	ObserveSlots(available, taken int)
}
