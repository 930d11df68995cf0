package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrLedger возвращается при ошибках обращения к redis
var ErrLedger = errors.New("cache: reminder ledger error")

// DefaultReminderTTL сколько хранится отметка об отправленном напоминании
const DefaultReminderTTL = 48 * time.Hour

// ReminderLedger отметки об отправленных напоминаниях в redis
// Ключ reminder:{booking_id}:{date} ставится через SETNX, поэтому
// напоминание по записи забирает только один экземпляр сервиса
type ReminderLedger struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReminderLedger создает журнал напоминаний
func NewReminderLedger(client *redis.Client, ttl time.Duration) *ReminderLedger {
	if ttl <= 0 {
		ttl = DefaultReminderTTL
	}
	return &ReminderLedger{client: client, ttl: ttl}
}

// TryAcquire ставит отметку для бронирования; false, если отметка уже есть
func (l *ReminderLedger) TryAcquire(ctx context.Context, bookingID int64, date string) (bool, error) {
	ok, err := l.client.SetNX(ctx, reminderKey(bookingID, date), time.Now().Unix(), l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: setnx booking_id=%d: %v", ErrLedger, bookingID, err)
	}
	return ok, nil
}

// Release снимает отметку, чтобы напоминание ушло на следующем запуске
func (l *ReminderLedger) Release(ctx context.Context, bookingID int64, date string) error {
	if err := l.client.Del(ctx, reminderKey(bookingID, date)).Err(); err != nil {
		return fmt.Errorf("%w: del booking_id=%d: %v", ErrLedger, bookingID, err)
	}
	return nil
}

func reminderKey(bookingID int64, date string) string {
	return fmt.Sprintf("reminder:%d:%s", bookingID, date)
}
