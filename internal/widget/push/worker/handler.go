package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// timestamp без зоны, как его пишет сервер (isoformat от UTC времени)
const naiveTimestampLayout = "2006-01-02T15:04:05.999999"

// Handler фоновый обработчик push-сообщений
type Handler struct {
	notifier Notifier
	clients  Clients
	clock    TimeProvider
	logger   Logger
}

// NewHandler создает обработчик
func NewHandler(notifier Notifier, clients Clients, clock TimeProvider, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		clients:  clients,
		clock:    clock,
		logger:   logger,
	}
}

// ParsePayload разбирает тело push-сообщения
// Пустое или битое тело не ошибка: подставляются тексты по умолчанию
func ParsePayload(data []byte, now time.Time) Message {
	msg := Message{
		Title:     domain.DefaultNotificationTitle,
		Body:      domain.DefaultNotificationMessage,
		Timestamp: now,
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return msg
	}

	var payload domain.PushPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return msg
	}

	if payload.Title != "" {
		msg.Title = payload.Title
	}
	if payload.Message != "" {
		msg.Body = payload.Message
	}
	if ts, ok := parseTimestamp(payload.Timestamp); ok {
		msg.Timestamp = ts
	}

	return msg
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, true
	}
	if ts, err := time.ParseInLocation(naiveTimestampLayout, s, time.UTC); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

// HandlePush показывает уведомление по пришедшему сообщению
func (h *Handler) HandlePush(ctx context.Context, data []byte) error {
	msg := ParsePayload(data, h.clock.Now())

	err := h.notifier.ShowNotification(ctx, msg.Title, Options{
		Body:      msg.Body,
		Tag:       NotificationTag,
		Timestamp: msg.Timestamp,
		Renotify:  true,
	})
	if err != nil {
		h.logger.Error("HandlePush: failed to show notification: %v", err)
		return fmt.Errorf("show notification: %w", err)
	}

	h.logger.Info("HandlePush: notification shown, title=%q", msg.Title)
	return nil
}

// HandleClick закрывает уведомление и переводит фокус на главную страницу,
// открывая ее, если подходящего окна нет
func (h *Handler) HandleClick(ctx context.Context, n Notification) error {
	n.Close()

	windows, err := h.clients.MatchAll(ctx)
	if err != nil {
		h.logger.Warn("HandleClick: failed to list windows: %v", err)
	}

	for _, w := range windows {
		if !isRootPage(w.URL()) {
			continue
		}
		if err := w.Focus(ctx); err != nil {
			h.logger.Warn("HandleClick: failed to focus %s: %v", w.URL(), err)
			continue
		}
		return nil
	}

	if err := h.clients.OpenWindow(ctx, RootPath); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	return nil
}

func isRootPage(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Path == RootPath || u.Path == ""
}
