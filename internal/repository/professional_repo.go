package repository

import (
	"context"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type ProfessionalRepository struct {
	db *gorm.DB
}

func NewProfessionalRepository(db *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

func (r *ProfessionalRepository) DB() *gorm.DB {
	return r.db
}

func (r *ProfessionalRepository) Create(ctx context.Context, p *domain.Professional) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfessionalRepository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	var p domain.Professional
	if err := r.db.WithContext(ctx).Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfessionalRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	var p domain.Professional
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListVerified returns publicly listable professionals sorted by rating
// desc, then review count desc.
func (r *ProfessionalRepository) ListVerified(ctx context.Context) ([]domain.Professional, error) {
	var rows []domain.Professional
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("verification_status = ? AND is_active = ?", string(domain.VerificationVerified), true).
		Order("rating DESC, review_count DESC").
		Find(&rows).Error
	return rows, err
}

func (r *ProfessionalRepository) ListByVerificationStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.Professional, error) {
	var rows []domain.Professional
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("verification_status = ?", string(status)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// Update persists profile fields. The derived rating columns and the
// verification status are excluded here so a stale in-memory struct
// cannot revert a concurrent SetRating or UpdateVerificationStatus.
func (r *ProfessionalRepository) Update(ctx context.Context, p *domain.Professional) error {
	return r.db.WithContext(ctx).
		Omit("rating", "review_count", "verification_status").
		Save(p).Error
}

func (r *ProfessionalRepository) UpdateVerificationStatus(ctx context.Context, id int64, status domain.VerificationStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Professional{}).
		Where("id = ?", id).
		Update("verification_status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetRating writes the derived rating fields; Update omits them, so
// review aggregation is the only path that can change them.
func (r *ProfessionalRepository) SetRating(ctx context.Context, id int64, rating float64, count int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Professional{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       rating,
			"review_count": count,
		}).Error
}
