package get_unread_count

import "context"

type NotificationService interface {
	GetUnreadCount(ctx context.Context, phone string) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
