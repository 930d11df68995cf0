package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CampBooking/internal/service/notifications"
)

const (
	msgInvalidID      = "Invalid notification id"
	msgNotFound       = "Notification not found"
	msgMarkReadFailed = "Failed to mark notification as read"
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

// Handle POST /api/notifications/{id}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /api/notifications/{id}/read - Invalid notification ID: %q", idStr)
		handlers.RespondFailure(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("POST /api/notifications/{id}/read - Notification not found: id=%d", id)
			handlers.RespondFailure(w, http.StatusNotFound, msgNotFound)

		default:
			h.logger.Error("POST /api/notifications/{id}/read - Failed to mark read: id=%d, error=%v", id, err)
			handlers.RespondFailure(w, http.StatusInternalServerError, msgMarkReadFailed)
		}
		return
	}

	h.logger.Info("POST /api/notifications/{id}/read - Notification marked as read: id=%d", id)
	handlers.RespondSuccess(w)
}
