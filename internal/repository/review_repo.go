package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) GetByProfessional(ctx context.Context, professionalID int64, limit, offset int) ([]domain.Review, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("professional_id = ?", professionalID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewRepository) SetResponse(ctx context.Context, reviewID int64, comment string) (*domain.Review, error) {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", reviewID).
		Updates(map[string]any{
			"response_comment": comment,
			"responded_at":     now,
			"updated_at":       now,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, reviewID)
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Aggregate computes the mean rating and review count for a professional.
func (r *ReviewRepository) Aggregate(ctx context.Context, professionalID int64) (float64, int, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS count").
		Where("professional_id = ?", professionalID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Avg, int(row.Count), nil
}
