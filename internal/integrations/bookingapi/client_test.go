package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second, logger.NewNop())
}

func TestFetchSlots_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/slots", r.URL.Path)
		assert.Equal(t, "2024-06-20", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`{"slots":[{"time":"09:00","available":true,"count":0,"max":2},{"time":"09:15","available":false}]}`))
	})

	slots, err := client.FetchSlots(context.Background(), "2024-06-20")

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:15", Available: false},
	}, slots)
}

func TestFetchSlots_EmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"slots":[]}`))
	})

	slots, err := client.FetchSlots(context.Background(), "2024-06-20")

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestFetchSlots_ServerError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"ok status", http.StatusOK},
		{"bad request", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"Нельзя бронировать на прошедшие даты"}`))
			})

			_, err := client.FetchSlots(context.Background(), "2020-01-01")

			require.ErrorIs(t, err, ErrServer)
			var se *ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, "Нельзя бронировать на прошедшие даты", UserMessage(err, "fallback"))
		})
	}
}

func TestFetchSlots_InvalidResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not json", http.StatusOK, "<html>oops</html>"},
		{"missing slots", http.StatusOK, `{"foo":1}`},
		{"unexpected status", http.StatusInternalServerError, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.FetchSlots(context.Background(), "2024-06-20")

			assert.ErrorIs(t, err, ErrInvalidResponse)
			assert.Equal(t, "fallback", UserMessage(err, "fallback"))
		})
	}
}

func TestFetchSlots_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, logger.NewNop())

	_, err := client.FetchSlots(context.Background(), "2024-06-20")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestSubscribe_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/subscribe", r.URL.Path)

		var req SubscribeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.BookingID)
		assert.Equal(t, "https://push.example/abc", req.Subscription.Endpoint)
		assert.Equal(t, "p256", req.Subscription.Keys.P256dh)
		assert.Equal(t, "auth", req.Subscription.Keys.Auth)

		_, _ = w.Write([]byte(`{"success":true}`))
	})

	err := client.Subscribe(context.Background(), 42, domain.PushSubscription{
		Endpoint:  "https://push.example/abc",
		P256dhKey: "p256",
		AuthKey:   "auth",
	})

	assert.NoError(t, err)
}

func TestSubscribe_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Бронирование не найдено"}`))
	})

	err := client.Subscribe(context.Background(), 7, domain.PushSubscription{Endpoint: "e"})

	require.ErrorIs(t, err, ErrServer)
	assert.Equal(t, "Бронирование не найдено", UserMessage(err, ""))
}

func TestSubscribe_InvalidResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("nope"))
	})

	err := client.Subscribe(context.Background(), 7, domain.PushSubscription{Endpoint: "e"})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
