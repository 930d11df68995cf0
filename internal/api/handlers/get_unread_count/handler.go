package get_unread_count

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampBooking/internal/api/handlers"
)

const (
	msgMissingPhone = "Phone is required"
	msgCountFailed  = "Failed to count notifications"
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

// Handle GET /api/notifications/{phone}/unread-count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := strings.TrimSpace(mux.Vars(r)["phone"])
	if phone == "" {
		h.logger.Warn("GET /api/notifications/{phone}/unread-count - Missing phone")
		handlers.RespondFailure(w, http.StatusBadRequest, msgMissingPhone)
		return
	}

	count, err := h.service.GetUnreadCount(r.Context(), phone)
	if err != nil {
		h.logger.Error("GET /api/notifications/{phone}/unread-count - Failed to count: error=%v", err)
		handlers.RespondFailure(w, http.StatusInternalServerError, msgCountFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UnreadCountResponse{
		Success: true,
		Count:   count,
	})
}
