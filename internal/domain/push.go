package domain

import "time"

// PushSubscription подписка браузера на push-уведомления по записи
// Одна подписка на запись, повторная подписка заменяет предыдущую
type PushSubscription struct {
	ID        int64
	BookingID int64
	Endpoint  string
	P256dhKey string
	AuthKey   string
	CreatedAt time.Time
}

// NotificationType тип уведомления
type NotificationType string

const (
	NotificationReminder     NotificationType = "reminder"
	NotificationCancellation NotificationType = "cancellation"
)

// Notification запись об уведомлении, которую пользователь видит в списке
type Notification struct {
	ID        int64
	BookingID int64
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
	SentAt    *time.Time
}

// PushPayload тело push-сообщения, которое получает фоновый обработчик
type PushPayload struct {
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
