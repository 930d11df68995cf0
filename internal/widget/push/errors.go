package push

import "errors"

var (
	// ErrNotRegistered возвращается при подписке до успешного Init
	ErrNotRegistered = errors.New("push: service worker is not registered")

	// ErrPermissionDenied возвращается, когда пользователь не дал разрешение
	ErrPermissionDenied = errors.New("push: notification permission denied")

	// ErrInvalidKey возвращается, когда VAPID ключ не декодируется
	ErrInvalidKey = errors.New("push: invalid application server key")

	// ErrSubscribeFailed возвращается, когда платформа не создала подписку
	ErrSubscribeFailed = errors.New("push: failed to create subscription")

	// ErrRegistrationFailed возвращается, когда сервер не сохранил подписку
	ErrRegistrationFailed = errors.New("push: failed to register subscription on server")
)
