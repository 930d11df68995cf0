package get_notifications

import "github.com/m04kA/SMC-CampBooking/internal/service/notifications/models"

// NotificationsResponse HTTP response model
type NotificationsResponse struct {
	Success       bool                          `json:"success"`
	Notifications []models.NotificationResponse `json:"notifications"`
}
