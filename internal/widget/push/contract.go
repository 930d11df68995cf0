package push

import (
	"context"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// Platform возможности среды выполнения (браузера) для push-уведомлений
type Platform interface {
	// Supported сообщает, есть ли service worker и Push API
	Supported() bool
	RegisterServiceWorker(ctx context.Context, scriptURL string) (Registration, error)
	RequestPermission(ctx context.Context) (Permission, error)
}

// Registration зарегистрированный фоновый обработчик
type Registration interface {
	// Subscribe создает подписку с ключом сервера приложений (сырые байты)
	Subscribe(ctx context.Context, applicationServerKey []byte) (*domain.PushSubscription, error)
	// Subscription возвращает текущую подписку или nil
	Subscription(ctx context.Context) (*domain.PushSubscription, error)
	// Unsubscribe отменяет текущую подписку, если она есть
	Unsubscribe(ctx context.Context) error
}

// SubscriptionRegistrar сохраняет подписку на сервере
type SubscriptionRegistrar interface {
	Subscribe(ctx context.Context, bookingID int64, sub domain.PushSubscription) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
