package picker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fetchResult struct {
	slots []domain.TimeSlot
	err   error
}

// fakeFetcher отвечает из карты; для дат из gates ждет закрытия канала
type fakeFetcher struct {
	mu      sync.Mutex
	results map[string]fetchResult
	gates   map[string]chan struct{}
	started chan string
}

func (f *fakeFetcher) FetchSlots(_ context.Context, date string) ([]domain.TimeSlot, error) {
	f.mu.Lock()
	gate := f.gates[date]
	res := f.results[date]
	f.mu.Unlock()

	if f.started != nil {
		f.started <- date
	}
	if gate != nil {
		<-gate
	}
	return res.slots, res.err
}

type fakeRenderer struct {
	mu    sync.Mutex
	calls [][]domain.HourGroup
}

func (r *fakeRenderer) Render(groups []domain.HourGroup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, groups)
}

type fakeReporter struct {
	messages []string
}

func (r *fakeReporter) ShowError(msg string) { r.messages = append(r.messages, msg) }

type fakeMetrics struct {
	available, taken int
}

func (m *fakeMetrics) ObserveSlots(available, taken int) {
	m.available += available
	m.taken += taken
}

func TestLoad_RendersGroupsWithPastMasking(t *testing.T) {
	now := time.Date(2024, 6, 20, 10, 5, 0, 0, time.UTC)
	fetcher := &fakeFetcher{results: map[string]fetchResult{
		"2024-06-20": {slots: []domain.TimeSlot{
			{Time: "09:00", Available: true},
			{Time: "10:30", Available: true},
			{Time: "11:00", Available: true},
		}},
	}}
	renderer := &fakeRenderer{}
	metrics := &fakeMetrics{}
	p := NewPicker(fetcher, renderer, &fakeReporter{}, &fakeClock{now: now}, metrics, logger.NewNop())

	err := p.Load(context.Background(), time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, renderer.calls, 1)
	groups := renderer.calls[0]
	require.Len(t, groups, 3)
	assert.True(t, groups[0].Slots[0].IsPast)
	assert.True(t, groups[1].Slots[0].IsPast)
	assert.True(t, groups[2].Slots[0].Available)
	assert.Equal(t, 1, metrics.available)
	assert.Equal(t, 2, metrics.taken)
}

func TestLoad_OtherDayNotMasked(t *testing.T) {
	now := time.Date(2024, 6, 20, 15, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{results: map[string]fetchResult{
		"2024-06-21": {slots: []domain.TimeSlot{{Time: "09:00", Available: true}}},
	}}
	renderer := &fakeRenderer{}
	p := NewPicker(fetcher, renderer, &fakeReporter{}, &fakeClock{now: now}, nil, logger.NewNop())

	require.NoError(t, p.Load(context.Background(), time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)))

	require.Len(t, renderer.calls, 1)
	assert.True(t, renderer.calls[0][0].Slots[0].Available)
}

func TestLoad_ErrorKeepsDisplay(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"server error", &bookingapi.ServerError{Status: 400, Message: "Дата вне диапазона"}, "Дата вне диапазона"},
		{"transport error", bookingapi.ErrInternal, defaultErrorMessage},
		{"invalid response", bookingapi.ErrInvalidResponse, defaultErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{results: map[string]fetchResult{"2024-06-21": {err: tt.err}}}
			renderer := &fakeRenderer{}
			reporter := &fakeReporter{}
			p := NewPicker(fetcher, renderer, reporter, &fakeClock{now: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)}, nil, logger.NewNop())

			err := p.Load(context.Background(), time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))

			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, renderer.calls)
			assert.Equal(t, []string{tt.message}, reporter.messages)
		})
	}
}

func TestLoad_StaleResponseDiscarded(t *testing.T) {
	gate := make(chan struct{})
	fetcher := &fakeFetcher{
		results: map[string]fetchResult{
			"2024-06-21": {slots: []domain.TimeSlot{{Time: "09:00", Available: true}}},
			"2024-06-22": {slots: []domain.TimeSlot{{Time: "12:00", Available: true}}},
		},
		gates:   map[string]chan struct{}{"2024-06-21": gate},
		started: make(chan string, 2),
	}
	renderer := &fakeRenderer{}
	p := NewPicker(fetcher, renderer, &fakeReporter{}, &fakeClock{now: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)}, nil, logger.NewNop())

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- p.Load(context.Background(), time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))
	}()
	require.Equal(t, "2024-06-21", <-fetcher.started)

	require.NoError(t, p.Load(context.Background(), time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC)))
	<-fetcher.started

	close(gate)
	assert.ErrorIs(t, <-firstErr, ErrSuperseded)

	require.Len(t, renderer.calls, 1)
	assert.Equal(t, "12", renderer.calls[0][0].Hour)
}

func TestLoad_StaleErrorNotReported(t *testing.T) {
	gate := make(chan struct{})
	fetcher := &fakeFetcher{
		results: map[string]fetchResult{
			"2024-06-21": {err: errors.New("timeout")},
			"2024-06-22": {slots: []domain.TimeSlot{}},
		},
		gates:   map[string]chan struct{}{"2024-06-21": gate},
		started: make(chan string, 2),
	}
	reporter := &fakeReporter{}
	p := NewPicker(fetcher, &fakeRenderer{}, reporter, &fakeClock{now: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)}, nil, logger.NewNop())

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- p.Load(context.Background(), time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))
	}()
	<-fetcher.started
	require.NoError(t, p.Load(context.Background(), time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC)))
	<-fetcher.started
	close(gate)

	assert.ErrorIs(t, <-firstErr, ErrSuperseded)
	assert.Empty(t, reporter.messages)
}
