package converter

import (
	"medifriend/internal/delivery/dto"
	"medifriend/internal/domain/entity"
)

// NotificationToResponse converts entity.Notification to dto.NotificationResponse
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	resp := &dto.NotificationResponse{
		ID:        notification.ID,
		Type:      string(notification.Type),
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}

	if notification.Link != nil {
		resp.Link = *notification.Link
	}

	return resp
}

// NotificationsToResponse converts a slice of notifications to response DTOs
func NotificationsToResponse(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *NotificationToResponse(&notifications[i]))
	}
	return responses
}
