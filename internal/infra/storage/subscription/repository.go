package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/psqlbuilder"
)

// Repository репозиторий push-подписок, одна подписка на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет подписку; если у бронирования уже есть подписка, заменяет ее ключи
func (r *Repository) Upsert(ctx context.Context, sub *domain.PushSubscription) (*domain.PushSubscription, error) {
	query, args, err := psqlbuilder.Insert("push_subscriptions").
		Columns("booking_id", "endpoint", "p256dh_key", "auth_key").
		Values(sub.BookingID, sub.Endpoint, sub.P256dhKey, sub.AuthKey).
		Suffix("ON CONFLICT (booking_id) DO UPDATE SET " +
			"endpoint = EXCLUDED.endpoint, " +
			"p256dh_key = EXCLUDED.p256dh_key, " +
			"auth_key = EXCLUDED.auth_key " +
			"RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	sub.CreatedAt = createdAt.Time

	return sub, nil
}

// GetByBookingID получает подписку бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.PushSubscription, error) {
	query, args, err := psqlbuilder.Select("id", "booking_id", "endpoint", "p256dh_key", "auth_key", "created_at").
		From("push_subscriptions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var sub domain.PushSubscription
	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&sub.BookingID,
		&sub.Endpoint,
		&sub.P256dhKey,
		&sub.AuthKey,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan subscription: %v", ErrScanRow, err)
	}
	sub.CreatedAt = createdAt.Time

	return &sub, nil
}

// DeleteByBookingID удаляет подписку бронирования (например, когда push-сервис ответил 404/410)
func (r *Repository) DeleteByBookingID(ctx context.Context, bookingID int64) error {
	query, args, err := psqlbuilder.Delete("push_subscriptions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
