package webpush

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	webpushgo "github.com/SherClockHolmes/webpush-go"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры VAPID и доставки
type Config struct {
	PublicKey  string
	PrivateKey string
	Subject    string
	TTL        int
	Timeout    time.Duration
}

// Sender отправляет зашифрованные push-сообщения по подпискам браузеров
type Sender struct {
	cfg    Config
	client *http.Client
	log    Logger
}

// NewSender создает отправителя push-сообщений
func NewSender(cfg Config, log Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Send шифрует payload ключами подписки и отправляет его в push-сервис браузера
func (s *Sender) Send(ctx context.Context, sub domain.PushSubscription, payload domain.PushPayload) error {
	if s.cfg.PublicKey == "" || s.cfg.PrivateKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode payload: %v", ErrSendFailed, err)
	}

	resp, err := webpushgo.SendNotificationWithContext(ctx, body, &webpushgo.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpushgo.Keys{
			P256dh: sub.P256dhKey,
			Auth:   sub.AuthKey,
		},
	}, &webpushgo.Options{
		HTTPClient:      s.client,
		Subscriber:      s.cfg.Subject,
		TTL:             s.cfg.TTL,
		Urgency:         webpushgo.UrgencyNormal,
		VAPIDPublicKey:  s.cfg.PublicKey,
		VAPIDPrivateKey: s.cfg.PrivateKey,
	})
	if err != nil {
		return fmt.Errorf("%w: booking_id=%d: %v", ErrSendFailed, sub.BookingID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		s.log.Info("Push sent: booking_id=%d, status=%d", sub.BookingID, resp.StatusCode)
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		s.log.Warn("Push subscription gone: booking_id=%d, status=%d", sub.BookingID, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrSubscriptionGone, resp.StatusCode)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: booking_id=%d: unexpected status code %d: %s", ErrSendFailed, sub.BookingID, resp.StatusCode, string(msg))
	}
}
