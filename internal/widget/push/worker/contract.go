package worker

import (
	"context"
	"time"
)

// Notifier показывает системные уведомления
type Notifier interface {
	ShowNotification(ctx context.Context, title string, opts Options) error
}

// Notification показанное уведомление
type Notification interface {
	Close()
}

// Clients окна приложения, которыми управляет фоновый обработчик
type Clients interface {
	MatchAll(ctx context.Context) ([]WindowClient, error)
	OpenWindow(ctx context.Context, url string) error
}

// WindowClient открытое окно приложения
type WindowClient interface {
	URL() string
	Focus(ctx context.Context) error
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
