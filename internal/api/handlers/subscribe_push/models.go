package subscribe_push

import "github.com/m04kA/SMC-CampBooking/internal/service/notifications/models"

// SubscribeRequest HTTP модель запроса на подписку
type SubscribeRequest struct {
	BookingID    int64         `json:"booking_id"`
	Subscription *Subscription `json:"subscription"`
}

// Subscription push-подписка браузера
type Subscription struct {
	Endpoint string `json:"endpoint"`
	Keys     Keys   `json:"keys"`
}

// Keys ключи шифрования подписки
type Keys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SubscribeRequest) ToServiceRequest() *models.SubscribeRequest {
	return &models.SubscribeRequest{
		BookingID: r.BookingID,
		Endpoint:  r.Subscription.Endpoint,
		P256dh:    r.Subscription.Keys.P256dh,
		Auth:      r.Subscription.Keys.Auth,
	}
}
