package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type Service struct {
	notifications NotificationRepository
	users         UserIDLister
}

func NewService(notifications NotificationRepository, users UserIDLister) *Service {
	return &Service{notifications: notifications, users: users}
}

type ListResult struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	UnreadCount   int64                 `json:"unread_count"`
}

func (s *Service) List(ctx context.Context, userID int64, unreadOnly bool, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, total, err := s.notifications.GetByUser(ctx, userID, unreadOnly, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.Notification{}
	}

	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListResult{Notifications: rows, Total: total, UnreadCount: unread}, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	if err := s.notifications.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

// Create is the admin path for a targeted notification.
func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*domain.Notification, error) {
	if !domain.ValidNotificationType(domain.NotificationType(req.Type)) {
		return nil, ErrValidation
	}

	n := s.build(req.UserID, domain.NotificationType(req.Type), req.Title, req.Message,
		priorityOrDefault(req.Priority), req.Data)
	if err := s.notifications.Create(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Broadcast fans a system message out to every user and reports how
// many notifications were created. The fan-out is not transactional.
func (s *Service) Broadcast(ctx context.Context, req BroadcastRequest) (int, error) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	ns := make([]domain.Notification, 0, len(ids))
	for _, id := range ids {
		ns = append(ns, s.build(id, domain.NotifSystemMessage, req.Title, req.Message,
			priorityOrDefault(req.Priority), nil))
	}

	return s.notifications.CreateBatch(ctx, ns)
}

// Delete removes one notification; only its owner or an admin may.
func (s *Service) Delete(ctx context.Context, id, callerID int64, role string) error {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if n.UserID != callerID && role != string(domain.RoleAdmin) {
		return ErrForbidden
	}

	if err := s.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Sweep purges expired notifications and returns how many were removed.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	return s.notifications.DeleteExpired(ctx, time.Now().UTC())
}

// RunSweeper purges on a fixed interval until ctx is cancelled.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				log.Printf("level=error msg=notification sweep failed err=%v", err)
				continue
			}
			if n > 0 {
				log.Printf("level=info msg=notification sweep removed=%d", n)
			}
		}
	}
}

// Notify* helpers are the event hooks the other modules call.

func (s *Service) NotifyBookingRequested(ctx context.Context, proUserID, bookingID int64, service, date, timeOfDay string) error {
	n := s.build(proUserID, domain.NotifBookingRequest, "New booking request",
		fmt.Sprintf("You have a new %s booking on %s at %s.", service, date, timeOfDay),
		domain.PriorityHigh, &domain.NotificationData{BookingID: &bookingID})
	return s.notifications.Create(ctx, &n)
}

func (s *Service) NotifyBookingCompleted(ctx context.Context, clientUserID, bookingID int64) error {
	n := s.build(clientUserID, domain.NotifBookingCompleted, "Booking completed",
		"Your booking was marked completed. You can now leave a review.",
		domain.PriorityMedium, &domain.NotificationData{BookingID: &bookingID})
	return s.notifications.Create(ctx, &n)
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, clientUserID, bookingID int64) error {
	n := s.build(clientUserID, domain.NotifBookingCancelled, "Booking cancelled",
		"Your booking was cancelled.",
		domain.PriorityMedium, &domain.NotificationData{BookingID: &bookingID})
	return s.notifications.Create(ctx, &n)
}

func (s *Service) NotifyPaymentReceived(ctx context.Context, userID, paymentID, bookingID int64, amount float64) error {
	n := s.build(userID, domain.NotifPaymentReceived, "Payment received",
		fmt.Sprintf("Your payment of $%.2f was received.", amount),
		domain.PriorityMedium, &domain.NotificationData{PaymentID: &paymentID, BookingID: &bookingID})
	return s.notifications.Create(ctx, &n)
}

func (s *Service) NotifyPaymentFailed(ctx context.Context, userID, paymentID, bookingID int64) error {
	n := s.build(userID, domain.NotifPaymentFailed, "Payment failed",
		"Your payment could not be processed. Please try again.",
		domain.PriorityUrgent, &domain.NotificationData{PaymentID: &paymentID, BookingID: &bookingID})
	return s.notifications.Create(ctx, &n)
}

func (s *Service) NotifyReviewReceived(ctx context.Context, userID, reviewID, professionalID int64, rating int) error {
	n := s.build(userID, domain.NotifReviewReceived, "New review",
		fmt.Sprintf("You received a new %d-star review.", rating),
		domain.PriorityLow, &domain.NotificationData{ReviewID: &reviewID, ProfessionalID: &professionalID})
	return s.notifications.Create(ctx, &n)
}

func (s *Service) NotifyVerificationUpdated(ctx context.Context, userID, professionalID int64, status domain.VerificationStatus) error {
	title := "Verification update"
	message := "Your verification status changed to " + string(status) + "."
	if status == domain.VerificationVerified {
		title = "You are verified"
		message = "Your professional profile was verified. You now appear in search results."
	}
	n := s.build(userID, domain.NotifSystemMessage, title, message,
		domain.PriorityHigh, &domain.NotificationData{ProfessionalID: &professionalID})
	return s.notifications.Create(ctx, &n)
}

func (s *Service) build(userID int64, typ domain.NotificationType, title, message string,
	priority domain.NotificationPriority, data *domain.NotificationData) domain.Notification {
	now := time.Now().UTC()
	return domain.Notification{
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Data:      data,
		Priority:  priority,
		Channels:  domain.NotificationChannels{InApp: true},
		CreatedAt: now,
		ExpiresAt: now.Add(domain.NotificationTTL),
	}
}

func priorityOrDefault(raw string) domain.NotificationPriority {
	switch domain.NotificationPriority(raw) {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent:
		return domain.NotificationPriority(raw)
	}
	return domain.PriorityMedium
}
