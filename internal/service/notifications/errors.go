package notifications

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// Исходы отправки push-сообщения для метрик
const (
	PushStatusSent           = "sent"
	PushStatusNoSubscription = "no_subscription"
	PushStatusGone           = "gone"
	PushStatusFailed         = "failed"
)
