package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Service, error) {
	if category != "" && !domain.ValidCategory(domain.ServiceCategory(category)) {
		return nil, ErrValidation
	}
	return s.services.ListActive(ctx, domain.ServiceCategory(category))
}

// GetByID also returns deactivated services: soft-deleted rows stay
// readable by id, they only drop out of the active listing.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	if !domain.ValidCategory(domain.ServiceCategory(category)) {
		return nil, ErrValidation
	}
	return s.services.ListActive(ctx, domain.ServiceCategory(category))
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if !domain.ValidCategory(domain.ServiceCategory(req.Category)) {
		return nil, ErrValidation
	}

	svc := &domain.Service{
		Name:                   strings.TrimSpace(req.Name),
		Category:               domain.ServiceCategory(req.Category),
		Description:            req.Description,
		BasePrice:              req.BasePrice,
		PriceUnit:              priceUnitOrDefault(req.PriceUnit),
		EstimatedDuration:      req.EstimatedDuration,
		MaterialsIncluded:      req.MaterialsIncluded,
		Difficulty:             difficultyOrDefault(req.Difficulty),
		RequiredCertifications: req.RequiredCertifications,
		Icon:                   req.Icon,
		IsActive:               true,
	}
	if svc.Name == "" {
		return nil, ErrValidation
	}

	if err := s.services.Create(ctx, svc); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrValidation
		}
		svc.Name = name
	}
	if req.Category != nil {
		if !domain.ValidCategory(domain.ServiceCategory(*req.Category)) {
			return nil, ErrValidation
		}
		svc.Category = domain.ServiceCategory(*req.Category)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.PriceUnit != nil {
		svc.PriceUnit = priceUnitOrDefault(*req.PriceUnit)
	}
	if req.EstimatedDuration != nil {
		svc.EstimatedDuration = *req.EstimatedDuration
	}
	if req.MaterialsIncluded != nil {
		svc.MaterialsIncluded = *req.MaterialsIncluded
	}
	if req.Difficulty != nil {
		svc.Difficulty = difficultyOrDefault(*req.Difficulty)
	}
	if req.RequiredCertifications != nil {
		svc.RequiredCertifications = req.RequiredCertifications
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return svc, nil
}

// Delete soft-deletes: the row stays readable, isActive flips off.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.services.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func priceUnitOrDefault(raw string) domain.PriceUnit {
	switch domain.PriceUnit(raw) {
	case domain.UnitHour, domain.UnitJob, domain.UnitSquareFoot, domain.UnitLinearFoot:
		return domain.PriceUnit(raw)
	}
	return domain.UnitJob
}

func difficultyOrDefault(raw string) domain.Difficulty {
	switch domain.Difficulty(raw) {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard, domain.DifficultyExpert:
		return domain.Difficulty(raw)
	}
	return domain.DifficultyMedium
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
