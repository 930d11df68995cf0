package subscribe_push

import (
	"context"

	"github.com/m04kA/SMC-CampBooking/internal/service/notifications/models"
)

type NotificationService interface {
	SaveSubscription(ctx context.Context, req *models.SubscribeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
