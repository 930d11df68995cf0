package notification

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/psqlbuilder"
)

// Repository репозиторий записей об уведомлениях
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет непрочитанное уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query, args, err := psqlbuilder.Insert("notifications").
		Columns("booking_id", "title", "message", "notification_type", "is_read").
		Values(n.BookingID, n.Title, n.Message, n.Type, false).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	n.IsRead = false
	n.CreatedAt = createdAt.Time

	return n, nil
}

// ListByBookingIDs получает уведомления бронирований, новые первыми
func (r *Repository) ListByBookingIDs(ctx context.Context, bookingIDs []int64) ([]*domain.Notification, error) {
	if len(bookingIDs) == 0 {
		return []*domain.Notification{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"title",
		"message",
		"notification_type",
		"is_read",
		"created_at",
		"sent_at",
	).
		From("notifications").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBookingIDs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var sentAt sql.NullTime
		err := rows.Scan(
			&n.ID,
			&n.BookingID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.IsRead,
			&n.CreatedAt,
			&sentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBookingIDs - scan row: %v", ErrScanRow, err)
		}
		if sentAt.Valid {
			t := sentAt.Time
			n.SentAt = &t
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBookingIDs - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// CountUnreadByBookingIDs считает непрочитанные уведомления бронирований
func (r *Repository) CountUnreadByBookingIDs(ctx context.Context, bookingIDs []int64) (int, error) {
	if len(bookingIDs) == 0 {
		return 0, nil
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{
			"booking_id": bookingIDs,
			"is_read":    false,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountUnreadByBookingIDs - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnreadByBookingIDs - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkRead отмечает уведомление прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "MarkRead", query, args)
}

// MarkSent запоминает время отправки push-сообщения
func (r *Repository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	query, args, err := psqlbuilder.Update("notifications").
		Set("sent_at", sentAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkSent - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "MarkSent", query, args)
}

// ExistsByBookingAndType проверяет, создавалось ли уже уведомление такого типа для бронирования
func (r *Repository) ExistsByBookingAndType(ctx context.Context, bookingID int64, typ domain.NotificationType) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{
			"booking_id":        bookingID,
			"notification_type": typ,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingAndType - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingAndType - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
