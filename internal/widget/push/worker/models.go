package worker

import "time"

const (
	// NotificationTag общий тег: повторное уведомление заменяет предыдущее
	NotificationTag = "camp-booking-notification"

	// RootPath страница, которая открывается по клику на уведомление
	RootPath = "/"
)

// Options параметры показа уведомления
type Options struct {
	Body      string
	Tag       string
	Timestamp time.Time
	Renotify  bool
}

// Message разобранное push-сообщение
type Message struct {
	Title     string
	Body      string
	Timestamp time.Time
}
