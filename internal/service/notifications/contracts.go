package notifications

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetIDsByPhone(ctx context.Context, phone string) ([]int64, error)
}

// SubscriptionRepository интерфейс репозитория push-подписок
type SubscriptionRepository interface {
	Upsert(ctx context.Context, sub *domain.PushSubscription) (*domain.PushSubscription, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.PushSubscription, error)
	DeleteByBookingID(ctx context.Context, bookingID int64) error
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByBookingIDs(ctx context.Context, bookingIDs []int64) ([]*domain.Notification, error)
	CountUnreadByBookingIDs(ctx context.Context, bookingIDs []int64) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
}

// PushSender отправляет push-сообщение по подписке
type PushSender interface {
	Send(ctx context.Context, sub domain.PushSubscription, payload domain.PushPayload) error
}

// Metrics учет исходов отправки push-сообщений
type Metrics interface {
	ObservePush(status string)
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
