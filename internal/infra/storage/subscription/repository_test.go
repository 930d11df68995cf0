package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampBooking/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO push_subscriptions \(booking_id,endpoint,p256dh_key,auth_key\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(booking_id\) DO UPDATE SET .+ RETURNING id, created_at`).
		WithArgs(int64(7), "https://push.example/1", "p256", "auth").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, created))

	sub, err := repo.Upsert(context.Background(), &domain.PushSubscription{
		BookingID: 7,
		Endpoint:  "https://push.example/1",
		P256dhKey: "p256",
		AuthKey:   "auth",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), sub.ID)
	assert.Equal(t, created, sub.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO push_subscriptions`).WillReturnError(errors.New("fk violation"))

	_, err := repo.Upsert(context.Background(), &domain.PushSubscription{BookingID: 1})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, booking_id, endpoint, p256dh_key, auth_key, created_at FROM push_subscriptions WHERE booking_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "endpoint", "p256dh_key", "auth_key", "created_at"}).
			AddRow(11, 7, "https://push.example/1", "p", "a", time.Now()))

	sub, err := repo.GetByBookingID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "https://push.example/1", sub.Endpoint)
	assert.Equal(t, int64(7), sub.BookingID)
}

func TestGetByBookingID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM push_subscriptions`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "endpoint", "p256dh_key", "auth_key", "created_at"}))

	_, err := repo.GetByBookingID(context.Background(), 8)

	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestDeleteByBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM push_subscriptions WHERE booking_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM push_subscriptions WHERE booking_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByBookingID(context.Background(), 7))
	assert.ErrorIs(t, repo.DeleteByBookingID(context.Background(), 7), ErrSubscriptionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
