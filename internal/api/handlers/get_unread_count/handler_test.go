package get_unread_count

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

type fakeService struct {
	count int
	err   error
	phone string
}

func (s *fakeService) GetUnreadCount(_ context.Context, phone string) (int, error) {
	s.phone = phone
	return s.count, s.err
}

func serve(svc NotificationService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/notifications/{phone}/unread-count", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{count: 3}

	rec := serve(svc, "/api/notifications/89990001122/unread-count")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "89990001122", svc.phone)
	assert.JSONEq(t, `{"success":true,"count":3}`, rec.Body.String())
}

func TestHandle_Zero(t *testing.T) {
	rec := serve(&fakeService{}, "/api/notifications/000/unread-count")

	assert.JSONEq(t, `{"success":true,"count":0}`, rec.Body.String())
}

func TestHandle_ServiceError(t *testing.T) {
	rec := serve(&fakeService{err: errors.New("db down")}, "/api/notifications/000/unread-count")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
