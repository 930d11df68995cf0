package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CampBooking/pkg/types"
)

// Repository репозиторий бронирований (только чтение)
// Записи создаются и отменяются внешней системой
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"b.id",
	"b.service_id",
	"s.name",
	"b.date",
	"b.time_slot",
	"b.last_name",
	"b.first_name",
	"b.phone",
	"b.camp",
	"b.status",
	"b.reference_number",
	"b.created_at",
}

// CountConfirmedByDate считает подтвержденные бронирования на дату по каждому слоту
// Слоты без бронирований в результат не попадают
func (r *Repository) CountConfirmedByDate(ctx context.Context, date time.Time) (map[types.TimeString]int, error) {
	query, args, err := psqlbuilder.Select("time_slot", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"date":   date.Format(domain.DateFormat),
			"status": domain.StatusConfirmed,
		}).
		GroupBy("time_slot").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[types.TimeString]int)
	for rows.Next() {
		var slot types.TimeString
		var count int
		if err := rows.Scan(&slot, &count); err != nil {
			return nil, fmt.Errorf("%w: CountConfirmedByDate - scan row: %v", ErrScanRow, err)
		}
		counts[slot] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountConfirmedByDate - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// GetByID получает бронирование по ID вместе с названием услуги
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetConfirmedByDate получает подтвержденные бронирования на дату, упорядоченные по времени
func (r *Repository) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Where(squirrel.Eq{
			"b.date":   date.Format(domain.DateFormat),
			"b.status": domain.StatusConfirmed,
		}).
		OrderBy("b.time_slot", "b.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetConfirmedByDate - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetIDsByPhone получает ID всех бронирований по номеру телефона
func (r *Repository) GetIDsByPhone(ctx context.Context, phone string) ([]int64, error) {
	query, args, err := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"phone": phone}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIDsByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIDsByPhone - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetIDsByPhone - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetIDsByPhone - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ServiceID,
		&b.ServiceName,
		&b.Date,
		&b.TimeSlot,
		&b.LastName,
		&b.FirstName,
		&b.Phone,
		&b.Camp,
		&b.Status,
		&b.ReferenceNumber,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}
