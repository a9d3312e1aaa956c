package catalog

import (
	"context"

	"fixnow/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context, category domain.ServiceCategory) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Deactivate(ctx context.Context, id int64) error
}
