package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// NotificationRepository проверка уже созданных уведомлений
type NotificationRepository interface {
	ExistsByBookingAndType(ctx context.Context, bookingID int64, typ domain.NotificationType) (bool, error)
}

// Reminder создает и отправляет напоминание
type Reminder interface {
	SendReminder(ctx context.Context, booking *domain.Booking) (*domain.Notification, error)
}

// Ledger отметки об отправленных напоминаниях, общие для всех инстансов
type Ledger interface {
	TryAcquire(ctx context.Context, bookingID int64, date string) (bool, error)
	Release(ctx context.Context, bookingID int64, date string) error
}

// Metrics учет исходов задачи
type Metrics interface {
	ObserveReminder(outcome string)
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
