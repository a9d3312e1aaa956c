package professional

import (
	"context"

	"fixnow/internal/domain"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, p *domain.Professional) error
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error)
	ListVerified(ctx context.Context) ([]domain.Professional, error)
	Update(ctx context.Context, p *domain.Professional) error
	UpdateVerificationStatus(ctx context.Context, id int64, status domain.VerificationStatus) error
}

type UserRoleUpdater interface {
	UpdateRole(ctx context.Context, userID int64, role domain.UserRole) error
}

type ServiceReader interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

type ReviewReader interface {
	GetByProfessional(ctx context.Context, professionalID int64, limit, offset int) ([]domain.Review, int64, error)
}

type NotificationSender interface {
	NotifyVerificationUpdated(ctx context.Context, userID, professionalID int64, status domain.VerificationStatus) error
}
