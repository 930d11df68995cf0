package picker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CampBooking/internal/widget/slotgroup"
)

// Picker загружает слоты выбранной даты и передает их на отрисовку
//
// Каждый запрос получает номер; ответ отрисовывается, только если его номер
// остался последним. Быстрая смена даты не приводит к показу старых слотов.
type Picker struct {
	seq atomic.Uint64
	mu  sync.Mutex

	fetcher  SlotFetcher
	renderer Renderer
	reporter ErrorReporter
	clock    TimeProvider
	metrics  Metrics
	logger   Logger
}

// NewPicker создает загрузчик слотов. metrics может быть nil
func NewPicker(fetcher SlotFetcher, renderer Renderer, reporter ErrorReporter, clock TimeProvider, metrics Metrics, logger Logger) *Picker {
	return &Picker{
		fetcher:  fetcher,
		renderer: renderer,
		reporter: reporter,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
	}
}

// Load загружает и отрисовывает слоты на дату
// При ошибке показывает сообщение и не трогает текущий список слотов
func (p *Picker) Load(ctx context.Context, date time.Time) error {
	ticket := p.seq.Add(1)
	iso := date.Format(domain.DateFormat)

	slots, err := p.fetcher.FetchSlots(ctx, iso)

	p.mu.Lock()
	defer p.mu.Unlock()

	if ticket != p.seq.Load() {
		p.logger.Info("Load: response for date=%s discarded, newer request in flight", iso)
		return ErrSuperseded
	}

	if err != nil {
		p.logger.Error("Load: failed to fetch slots for date=%s: %v", iso, err)
		p.reporter.ShowError(bookingapi.UserMessage(err, defaultErrorMessage))
		return err
	}

	now := p.clock.Now()
	isToday := sameDay(date, now)
	groups := slotgroup.GroupByHour(slots, isToday, now.Hour())

	p.renderer.Render(groups)
	p.observe(groups)

	p.logger.Info("Load: date=%s, groups=%d, slots=%d", iso, len(groups), len(slots))
	return nil
}

func (p *Picker) observe(groups []domain.HourGroup) {
	if p.metrics == nil {
		return
	}
	available, taken := 0, 0
	for _, g := range groups {
		for _, s := range g.Slots {
			if s.Available {
				available++
			} else {
				taken++
			}
		}
	}
	p.metrics.ObserveSlots(available, taken)
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
