package api

import (
	"net/http"

	"github.com/taskmaster/api/internal/api/shared"
	"github.com/taskmaster/api/internal/service"
)

// NotificationHandler handles notification-related API requests.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /routes/notifications. Each caller sees only their
// own notifications, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	notifications, err := h.notificationService.ListForUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		resp = append(resp, notificationToResponse(notification))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
