package calendar

import (
	"context"
	"time"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// SlotLoader загружает и отображает слоты выбранной даты
type SlotLoader interface {
	Load(ctx context.Context, date time.Time) error
}

// Layout управляет видимостью контейнеров страницы
type Layout interface {
	SetDateLabel(label string)
	ShowSlots()
	HideForm()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
