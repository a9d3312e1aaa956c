package notification

import "fixnow/internal/domain"

type CreateNotificationRequest struct {
	UserID   int64                    `json:"user_id" binding:"required"`
	Type     string                   `json:"type" binding:"required"`
	Title    string                   `json:"title" binding:"required"`
	Message  string                   `json:"message" binding:"required"`
	Priority string                   `json:"priority"`
	Data     *domain.NotificationData `json:"data"`
}

type BroadcastRequest struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority"`
}
