package handler

import (
	"net/http"

	"medifriend/internal/usecase"
	"medifriend/pkg/response"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

func (h *NotificationHandler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.notificationUsecase.GetMyNotifications(r.Context(), unreadOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationUsecase.GetUnreadCount(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to count notifications")
		return
	}

	response.Success(w, http.StatusOK, "Unread count retrieved successfully", count)
}

func (h *NotificationHandler) OpenPanel(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationUsecase.OpenPanel(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to open notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications acknowledged successfully", nil)
}
