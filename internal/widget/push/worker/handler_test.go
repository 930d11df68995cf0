package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type shown struct {
	title string
	opts  Options
}

type fakeNotifier struct {
	shown []shown
	err   error
}

func (n *fakeNotifier) ShowNotification(_ context.Context, title string, opts Options) error {
	if n.err != nil {
		return n.err
	}
	n.shown = append(n.shown, shown{title: title, opts: opts})
	return nil
}

type fakeNotification struct{ closed bool }

func (n *fakeNotification) Close() { n.closed = true }

type fakeWindow struct {
	url      string
	focused  bool
	focusErr error
}

func (w *fakeWindow) URL() string { return w.url }

func (w *fakeWindow) Focus(context.Context) error {
	if w.focusErr != nil {
		return w.focusErr
	}
	w.focused = true
	return nil
}

type fakeClients struct {
	windows []WindowClient
	opened  []string
}

func (c *fakeClients) MatchAll(context.Context) ([]WindowClient, error) { return c.windows, nil }

func (c *fakeClients) OpenWindow(_ context.Context, url string) error {
	c.opened = append(c.opened, url)
	return nil
}

var testNow = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Message
	}{
		{
			name: "full payload",
			data: `{"title":"Напоминание о записи","message":"Завтра в 10:00","timestamp":"2024-06-19T10:00:00.123456"}`,
			want: Message{
				Title:     "Напоминание о записи",
				Body:      "Завтра в 10:00",
				Timestamp: time.Date(2024, 6, 19, 10, 0, 0, 123456000, time.UTC),
			},
		},
		{
			name: "rfc3339 timestamp",
			data: `{"title":"T","message":"M","timestamp":"2024-06-19T10:00:00Z"}`,
			want: Message{Title: "T", Body: "M", Timestamp: time.Date(2024, 6, 19, 10, 0, 0, 0, time.UTC)},
		},
		{
			name: "empty",
			data: "",
			want: Message{Title: domain.DefaultNotificationTitle, Body: domain.DefaultNotificationMessage, Timestamp: testNow},
		},
		{
			name: "not json",
			data: "hello",
			want: Message{Title: domain.DefaultNotificationTitle, Body: domain.DefaultNotificationMessage, Timestamp: testNow},
		},
		{
			name: "partial",
			data: `{"title":"Только заголовок","timestamp":"вчера"}`,
			want: Message{Title: "Только заголовок", Body: domain.DefaultNotificationMessage, Timestamp: testNow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePayload([]byte(tt.data), testNow)
			assert.Equal(t, tt.want.Title, got.Title)
			assert.Equal(t, tt.want.Body, got.Body)
			assert.True(t, tt.want.Timestamp.Equal(got.Timestamp), "timestamp %s", got.Timestamp)
		})
	}
}

func TestHandlePush_UsesFixedTag(t *testing.T) {
	notifier := &fakeNotifier{}
	h := NewHandler(notifier, &fakeClients{}, &fakeClock{now: testNow}, logger.NewNop())

	require.NoError(t, h.HandlePush(context.Background(), []byte(`{"title":"A","message":"1"}`)))
	require.NoError(t, h.HandlePush(context.Background(), nil))

	require.Len(t, notifier.shown, 2)
	assert.Equal(t, "A", notifier.shown[0].title)
	assert.Equal(t, "1", notifier.shown[0].opts.Body)
	assert.Equal(t, domain.DefaultNotificationTitle, notifier.shown[1].title)
	for _, s := range notifier.shown {
		assert.Equal(t, NotificationTag, s.opts.Tag)
	}
}

func TestHandlePush_NotifierError(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("no permission")}
	h := NewHandler(notifier, &fakeClients{}, &fakeClock{now: testNow}, logger.NewNop())

	assert.Error(t, h.HandlePush(context.Background(), nil))
}

func TestHandleClick_FocusesRootWindow(t *testing.T) {
	other := &fakeWindow{url: "https://camp.example/notifications/79990001122"}
	root := &fakeWindow{url: "https://camp.example/"}
	clients := &fakeClients{windows: []WindowClient{other, root}}
	h := NewHandler(&fakeNotifier{}, clients, &fakeClock{now: testNow}, logger.NewNop())
	n := &fakeNotification{}

	require.NoError(t, h.HandleClick(context.Background(), n))

	assert.True(t, n.closed)
	assert.True(t, root.focused)
	assert.False(t, other.focused)
	assert.Empty(t, clients.opened)
}

func TestHandleClick_OpensRootWhenNoWindow(t *testing.T) {
	tests := []struct {
		name    string
		windows []WindowClient
	}{
		{"no windows", nil},
		{"only other pages", []WindowClient{&fakeWindow{url: "https://camp.example/admin"}}},
		{"focus fails", []WindowClient{&fakeWindow{url: "https://camp.example/", focusErr: errors.New("denied")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := &fakeClients{windows: tt.windows}
			h := NewHandler(&fakeNotifier{}, clients, &fakeClock{now: testNow}, logger.NewNop())
			n := &fakeNotification{}

			require.NoError(t, h.HandleClick(context.Background(), n))

			assert.True(t, n.closed)
			assert.Equal(t, []string{RootPath}, clients.opened)
		})
	}
}
