package webpush

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	webpushgo "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

func newTestSubscription(t *testing.T, endpoint string) domain.PushSubscription {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	return domain.PushSubscription{
		BookingID: 5,
		Endpoint:  endpoint,
		P256dhKey: base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		AuthKey:   base64.RawURLEncoding.EncodeToString(auth),
	}
}

func newTestSender(t *testing.T) *Sender {
	t.Helper()

	private, public, err := webpushgo.GenerateVAPIDKeys()
	require.NoError(t, err)

	return NewSender(Config{
		PublicKey:  public,
		PrivateKey: private,
		Subject:    "mailto:admin@example.com",
		TTL:        60,
		Timeout:    2 * time.Second,
	}, logger.NewNop())
}

func TestSend_StatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"created", http.StatusCreated, nil},
		{"not found", http.StatusNotFound, ErrSubscriptionGone},
		{"gone", http.StatusGone, ErrSubscriptionGone},
		{"server error", http.StatusInternalServerError, ErrSendFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEncoding, gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotEncoding = r.Header.Get("Content-Encoding")
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			sender := newTestSender(t)
			err := sender.Send(context.Background(), newTestSubscription(t, srv.URL), domain.PushPayload{
				Title:   "Напоминание о записи",
				Message: "Завтра в 10:00",
			})

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, "aes128gcm", gotEncoding)
			assert.Contains(t, gotAuth, "vapid t=")
		})
	}
}

func TestSend_NotConfigured(t *testing.T) {
	sender := NewSender(Config{}, logger.NewNop())

	err := sender.Send(context.Background(), domain.PushSubscription{Endpoint: "http://127.0.0.1:1"}, domain.PushPayload{})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSend_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	sender := newTestSender(t)
	err := sender.Send(context.Background(), newTestSubscription(t, srv.URL), domain.PushPayload{Title: "x"})

	assert.ErrorIs(t, err, ErrSendFailed)
}
