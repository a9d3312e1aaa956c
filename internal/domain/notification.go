package domain

import "time"

type NotificationType string

const (
	NotifBookingRequest   NotificationType = "booking_request"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifBookingCompleted NotificationType = "booking_completed"
	NotifPaymentReceived  NotificationType = "payment_received"
	NotifPaymentFailed    NotificationType = "payment_failed"
	NotifReviewReceived   NotificationType = "review_received"
	NotifSystemMessage    NotificationType = "system_message"
	NotifPromotion        NotificationType = "promotion"
)

func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotifBookingRequest, NotifBookingConfirmed, NotifBookingCancelled,
		NotifBookingCompleted, NotifPaymentReceived, NotifPaymentFailed,
		NotifReviewReceived, NotifSystemMessage, NotifPromotion:
		return true
	}
	return false
}

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// NotificationData carries optional entity references for deep links.
type NotificationData struct {
	BookingID      *int64 `json:"booking_id,omitempty"`
	PaymentID      *int64 `json:"payment_id,omitempty"`
	ReviewID       *int64 `json:"review_id,omitempty"`
	ProfessionalID *int64 `json:"professional_id,omitempty"`
}

type NotificationChannels struct {
	InApp bool `json:"in_app"`
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// NotificationTTL is how long a notification stays readable before the
// sweep removes it.
const NotificationTTL = 30 * 24 * time.Hour

type Notification struct {
	ID        int64                `json:"id" gorm:"primaryKey"`
	UserID    int64                `json:"user_id" gorm:"index:idx_notifications_user_read"`
	Type      NotificationType     `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message" gorm:"type:text"`
	Data      *NotificationData    `json:"data,omitempty" gorm:"serializer:json"`
	IsRead    bool                 `json:"is_read" gorm:"index:idx_notifications_user_read"`
	Priority  NotificationPriority `json:"priority"`
	Channels  NotificationChannels `json:"channels" gorm:"serializer:json"`
	EmailSent bool                 `json:"email_sent"`
	SMSSent   bool                 `json:"sms_sent"`
	CreatedAt time.Time            `json:"created_at"`
	ExpiresAt time.Time            `json:"expires_at" gorm:"index"`
}

func (Notification) TableName() string { return "notifications" }

// Expired reports whether the notification has passed its TTL at now.
func (n *Notification) Expired(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && n.ExpiresAt.Before(now)
}
