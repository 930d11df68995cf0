package subscribe_push

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CampBooking/internal/service/notifications"
)

const (
	msgMissingData     = "Missing data"
	msgBookingNotFound = "Booking not found"
	msgSaveFailed      = "Failed to save subscription"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/subscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/subscribe - Invalid request body: %v", err)
		handlers.RespondFailure(w, http.StatusBadRequest, msgMissingData)
		return
	}

	if req.BookingID == 0 || req.Subscription == nil {
		h.logger.Warn("POST /api/subscribe - Missing booking_id or subscription")
		handlers.RespondFailure(w, http.StatusBadRequest, msgMissingData)
		return
	}

	err := h.service.SaveSubscription(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /api/subscribe - Invalid subscription: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondFailure(w, http.StatusBadRequest, msgMissingData)

		case errors.Is(err, notifications.ErrBookingNotFound):
			h.logger.Warn("POST /api/subscribe - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondFailure(w, http.StatusNotFound, msgBookingNotFound)

		default:
			h.logger.Error("POST /api/subscribe - Failed to save subscription: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondFailure(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	h.logger.Info("POST /api/subscribe - Subscription saved: booking_id=%d", req.BookingID)
	handlers.RespondSuccess(w)
}
