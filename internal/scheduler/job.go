package scheduler

import (
	"context"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

// Исходы обработки одного бронирования
const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Report итог одного запуска задачи
type Report struct {
	Date    string
	Found   int
	Sent    int
	Skipped int
	Failed  int
}

// ReminderJob рассылает напоминания по подтвержденным бронированиям на завтра.
// Каждое бронирование получает не больше одного напоминания: отметка в ledger
// защищает от параллельных инстансов, проверка в БД от повторных запусков.
type ReminderJob struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	reminder         Reminder
	ledger           Ledger
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewReminderJob создает задачу; ledger и metrics могут быть nil
func NewReminderJob(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	reminder Reminder,
	ledger Ledger,
	metrics Metrics,
	logger Logger,
) *ReminderJob {
	return &ReminderJob{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		reminder:         reminder,
		ledger:           ledger,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Run выполняет один проход по бронированиям на завтра
func (j *ReminderJob) Run(ctx context.Context) (*Report, error) {
	now := j.timeProvider.Now()
	tomorrow := startOfDay(now).AddDate(0, 0, 1)
	date := tomorrow.Format(domain.DateFormat)

	bookings, err := j.bookingRepo.GetConfirmedByDate(ctx, tomorrow)
	if err != nil {
		j.logger.Error("ReminderJob: failed to get bookings for date=%s: %v", date, err)
		return nil, err
	}

	report := &Report{Date: date, Found: len(bookings)}
	j.logger.Info("ReminderJob: found %d bookings for date=%s", len(bookings), date)

	for _, b := range bookings {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		outcome := j.process(ctx, b, date)
		switch outcome {
		case OutcomeSent:
			report.Sent++
		case OutcomeSkipped:
			report.Skipped++
		case OutcomeFailed:
			report.Failed++
		}
		if j.metrics != nil {
			j.metrics.ObserveReminder(outcome)
		}
	}

	j.logger.Info("ReminderJob: date=%s done: sent=%d, skipped=%d, failed=%d",
		date, report.Sent, report.Skipped, report.Failed)

	return report, nil
}

func (j *ReminderJob) process(ctx context.Context, b *domain.Booking, date string) string {
	acquired := false
	if j.ledger != nil {
		ok, err := j.ledger.TryAcquire(ctx, b.ID, date)
		switch {
		case err != nil:
			// без ledger остается проверка в БД
			j.logger.Warn("ReminderJob: ledger unavailable for booking id=%d: %v", b.ID, err)
		case !ok:
			return OutcomeSkipped
		default:
			acquired = true
		}
	}

	exists, err := j.notificationRepo.ExistsByBookingAndType(ctx, b.ID, domain.NotificationReminder)
	if err != nil {
		j.logger.Error("ReminderJob: failed to check reminder for booking id=%d: %v", b.ID, err)
		j.release(ctx, acquired, b.ID, date)
		return OutcomeFailed
	}
	if exists {
		return OutcomeSkipped
	}

	if _, err := j.reminder.SendReminder(ctx, b); err != nil {
		j.logger.Error("ReminderJob: failed to send reminder for %s: %v", b.ReferenceNumber, err)
		j.release(ctx, acquired, b.ID, date)
		return OutcomeFailed
	}

	j.logger.Info("ReminderJob: sent reminder for booking %s", b.ReferenceNumber)
	return OutcomeSent
}

// release снимает отметку, чтобы следующий запуск повторил попытку
func (j *ReminderJob) release(ctx context.Context, acquired bool, bookingID int64, date string) {
	if !acquired {
		return
	}
	if err := j.ledger.Release(ctx, bookingID, date); err != nil {
		j.logger.Warn("ReminderJob: failed to release ledger for booking id=%d: %v", bookingID, err)
	}
}
