package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// CreateBatch inserts notifications for a broadcast fan-out. The insert
// is chunked, not transactional: a mid-batch failure leaves earlier
// chunks in place.
func (r *NotificationRepository) CreateBatch(ctx context.Context, ns []domain.Notification) (int, error) {
	if len(ns) == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(ns, 100).Error; err != nil {
		return 0, err
	}
	return len(ns), nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.WithContext(ctx).
		Where("expires_at > ?", time.Now().UTC()).
		First(&n, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByUser lists non-expired notifications newest first.
func (r *NotificationRepository) GetByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now().UTC())
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Notification
	err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ? AND expires_at > ?", userID, false, time.Now().UTC()).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Notification{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteExpired removes rows past their TTL and returns how many went.
func (r *NotificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&domain.Notification{})
	return tx.RowsAffected, tx.Error
}
