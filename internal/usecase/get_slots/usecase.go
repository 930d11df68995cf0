package get_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// UseCase use case получения слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     Schedule
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule Schedule,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetSlots: date=%s", date)

	// 1. Проверяем дату
	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.schedule.DaysAhead); err != nil {
		uc.logger.Warn("GetSlots: date validation failed: date=%s, error=%v", date, err)
		return nil, err
	}

	// 2. Генерируем сетку слотов дня
	times, err := generateTimes(uc.schedule.DayStart, uc.schedule.DayEnd, uc.schedule.StepMinutes)
	if err != nil {
		uc.logger.Error("GetSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 3. Считаем подтвержденные бронирования
	counts, err := uc.bookingRepo.CountConfirmedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetSlots: failed to count bookings: date=%s, error=%v", date, err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	// 4. Проставляем доступность
	slots := buildSlots(times, counts, uc.schedule.MaxBookingsPerSlot)
	uc.observe(slots)

	uc.logger.Info("GetSlots: generated %d slots for date=%s", len(slots), date)

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

func (uc *UseCase) observe(slots []Slot) {
	if uc.metrics == nil {
		return
	}
	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	uc.metrics.ObserveSlots(available, len(slots)-available)
}
