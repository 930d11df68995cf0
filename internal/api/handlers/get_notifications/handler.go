package get_notifications

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampBooking/internal/api/handlers"
)

const (
	msgMissingPhone = "Phone is required"
	msgLoadFailed   = "Failed to load notifications"
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

// Handle GET /api/notifications/{phone}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := strings.TrimSpace(mux.Vars(r)["phone"])
	if phone == "" {
		h.logger.Warn("GET /api/notifications/{phone} - Missing phone")
		handlers.RespondFailure(w, http.StatusBadRequest, msgMissingPhone)
		return
	}

	list, err := h.service.GetUserNotifications(r.Context(), phone)
	if err != nil {
		h.logger.Error("GET /api/notifications/{phone} - Failed to get notifications: error=%v", err)
		handlers.RespondFailure(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	h.logger.Info("GET /api/notifications/{phone} - Notifications retrieved: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, NotificationsResponse{
		Success:       true,
		Notifications: list,
	})
}
