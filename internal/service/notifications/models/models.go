package models

import (
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// SubscribeRequest запрос на сохранение push-подписки
type SubscribeRequest struct {
	BookingID int64
	Endpoint  string
	P256dh    string
	Auth      string
}

// NotificationResponse уведомление в списке пользователя
type NotificationResponse struct {
	ID               int64   `json:"id"`
	BookingID        int64   `json:"booking_id"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
	NotificationType string  `json:"notification_type"`
	IsRead           bool    `json:"is_read"`
	CreatedAt        string  `json:"created_at"`
	SentAt           *string `json:"sent_at"`
}

// FromDomainNotification конвертирует domain модель в ответ
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:               n.ID,
		BookingID:        n.BookingID,
		Title:            n.Title,
		Message:          n.Message,
		NotificationType: string(n.Type),
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt.Format(time.RFC3339),
	}
	if n.SentAt != nil {
		sent := n.SentAt.Format(time.RFC3339)
		resp.SentAt = &sent
	}
	return resp
}

// FromDomainNotifications конвертирует список уведомлений
func FromDomainNotifications(list []*domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromDomainNotification(n))
	}
	return out
}
