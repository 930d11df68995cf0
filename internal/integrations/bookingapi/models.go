package bookingapi

// SlotsResponse ответ GET /api/slots
type SlotsResponse struct {
	Slots *[]SlotDTO `json:"slots"`
	Error string     `json:"error,omitempty"`
}

// SlotDTO слот в ответе сервера
type SlotDTO struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Count     int    `json:"count,omitempty"`
	Max       int    `json:"max,omitempty"`
}

// SubscribeRequest тело POST /api/subscribe
type SubscribeRequest struct {
	BookingID    int64            `json:"booking_id"`
	Subscription SubscriptionJSON `json:"subscription"`
}

// SubscriptionJSON подписка в формате PushSubscription.toJSON()
type SubscriptionJSON struct {
	Endpoint string  `json:"endpoint"`
	Keys     KeysDTO `json:"keys"`
}

// KeysDTO ключи шифрования подписки
type KeysDTO struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// SubscribeResponse ответ POST /api/subscribe
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
