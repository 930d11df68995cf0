package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

// Scheduler запускает ReminderJob по cron расписанию
type Scheduler struct {
	cron   *cron.Cron
	job    *ReminderJob
	ctx    context.Context
	cancel context.CancelFunc
	logger Logger
}

// New создает планировщик с расписанием spec (стандартный cron или @every/@hourly)
func New(spec string, job *ReminderJob, logger Logger) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	cl := cronLogger{logger: logger}

	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cl),
			cron.SkipIfStillRunning(cl),
		)),
		job:    job,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", spec, err)
	}

	return s, nil
}

// Start запускает планировщик в отдельной горутине
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started: %d job(s)", len(s.cron.Entries()))
}

// Stop останавливает планировщик и ждет завершения текущего запуска, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	defer s.cancel()

	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	if _, err := s.job.Run(ctx); err != nil {
		s.logger.Error("Scheduler: reminder job failed: %v", err)
	}
}

// cronLogger адаптер логгера для cron
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: %s: %v %v", msg, err, keysAndValues)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
