package notification

import (
	"context"
	"time"

	"fixnow/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateBatch(ctx context.Context, ns []domain.Notification) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	GetByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]domain.Notification, int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// UserIDLister supplies the broadcast audience.
type UserIDLister interface {
	ListIDs(ctx context.Context) ([]int64, error)
}
