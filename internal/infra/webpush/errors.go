package webpush

import "errors"

var (
	// ErrSubscriptionGone возвращается, когда push-сервис ответил 404/410 и подписку нужно удалить
	ErrSubscriptionGone = errors.New("webpush: subscription is gone")

	// ErrSendFailed возвращается при прочих ошибках отправки
	ErrSendFailed = errors.New("webpush: failed to send notification")

	// ErrNotConfigured возвращается, когда VAPID ключи не заданы
	ErrNotConfigured = errors.New("webpush: vapid keys are not configured")
)
