package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// maxBodySize ограничение на размер читаемого ответа
const maxBodySize = 1 << 20

// Client клиент API бронирования для виджета
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента API бронирования
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchSlots получает слоты на дату (YYYY-MM-DD)
// Тело разбирается при любом статусе: сервер кладет описание ошибки в поле error
func (c *Client) FetchSlots(ctx context.Context, date string) ([]domain.TimeSlot, error) {
	endpoint := fmt.Sprintf("%s/api/slots?date=%s", c.baseURL, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	var out SlotsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: status %d: failed to decode response: %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	if out.Error != "" {
		c.log.Warn("FetchSlots: server error for date=%s: %s", date, out.Error)
		return nil, &ServerError{Status: resp.StatusCode, Message: out.Error}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}
	if out.Slots == nil {
		return nil, fmt.Errorf("%w: slots field is missing", ErrInvalidResponse)
	}

	slots := make([]domain.TimeSlot, 0, len(*out.Slots))
	for _, s := range *out.Slots {
		slots = append(slots, domain.TimeSlot{Time: s.Time, Available: s.Available})
	}

	c.log.Info("FetchSlots: date=%s, slots=%d", date, len(slots))
	return slots, nil
}

// Subscribe регистрирует push-подписку для бронирования на сервере
func (c *Client) Subscribe(ctx context.Context, bookingID int64, sub domain.PushSubscription) error {
	payload, err := json.Marshal(SubscribeRequest{
		BookingID: bookingID,
		Subscription: SubscriptionJSON{
			Endpoint: sub.Endpoint,
			Keys: KeysDTO{
				P256dh: sub.P256dhKey,
				Auth:   sub.AuthKey,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	endpoint := c.baseURL + "/api/subscribe"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var out SubscribeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&out); err != nil {
		return fmt.Errorf("%w: status %d: failed to decode response: %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = out.Error
		}
		c.log.Warn("Subscribe: server rejected booking_id=%d: %s", bookingID, msg)
		return &ServerError{Status: resp.StatusCode, Message: msg}
	}

	c.log.Info("Subscribe: booking_id=%d subscribed", bookingID)
	return nil
}
