package get_slots

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	getSlots "github.com/m04kA/SMC-CampBooking/internal/usecase/get_slots"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *getSlots.Response
	err  error
	got  *getSlots.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	u.got = req
	return u.resp, u.err
}

func serve(uc GetSlotsUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getSlots.Response{
		Date: date,
		Slots: []getSlots.Slot{
			{Time: "09:00", Available: false, Count: 2, Max: 2},
			{Time: "09:15", Available: true, Count: 0, Max: 2},
		},
	}}

	rec := serve(uc, "/api/slots?date=2024-06-16")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, date, uc.got.Date)
	assert.JSONEq(t, `{
		"date": "2024-06-16",
		"slots": [
			{"time": "09:00", "available": false, "count": 2, "max": 2},
			{"time": "09:15", "available": true, "count": 0, "max": 2}
		]
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing date", "/api/slots", nil, http.StatusBadRequest, msgMissingDate},
		{"bad format", "/api/slots?date=16.06.2024", nil, http.StatusBadRequest, msgInvalidDate},
		{"past", "/api/slots?date=2024-06-01", getSlots.ErrDateInPast, http.StatusBadRequest, msgDateInPast},
		{"too far", "/api/slots?date=2025-06-01", fmt.Errorf("%w: 30 days", getSlots.ErrDateTooFarInFuture), http.StatusBadRequest, msgDateTooFarOff},
		{"internal", "/api/slots?date=2024-06-20", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
		})
	}
}
