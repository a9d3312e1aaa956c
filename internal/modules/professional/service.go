package professional

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type Service struct {
	pros     ProfessionalRepository
	users    UserRoleUpdater
	services ServiceReader
	reviews  ReviewReader
	notifs   NotificationSender
}

func NewService(pros ProfessionalRepository, users UserRoleUpdater, services ServiceReader, reviews ReviewReader, notifs NotificationSender) *Service {
	return &Service{pros: pros, users: users, services: services, reviews: reviews, notifs: notifs}
}

// CreateProfile registers a professional profile for the user and
// promotes them to the professional role. One profile per user.
func (s *Service) CreateProfile(ctx context.Context, userID int64, req CreateProfileRequest) (*domain.Professional, error) {
	if _, err := s.pros.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	known, err := s.services.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(known) != len(dedupe(req.ServiceIDs)) {
		return nil, ErrValidation
	}

	p := &domain.Professional{
		UserID:             userID,
		BusinessName:       req.BusinessName,
		Description:        req.Description,
		ServiceIDs:         req.ServiceIDs,
		Experience:         req.Experience,
		Certifications:     req.Certifications,
		Insurance:          req.Insurance,
		Availability:       req.Availability,
		Location:           req.Location,
		Radius:             req.Radius,
		HourlyRate:         req.HourlyRate,
		ProfileImage:       req.ProfileImage,
		PortfolioImages:    req.PortfolioImages,
		VerificationStatus: domain.VerificationPending,
		IsActive:           true,
	}
	if err := s.pros.Create(ctx, p); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrProfileExists
		}
		return nil, err
	}

	if err := s.users.UpdateRole(ctx, userID, domain.RoleProfessional); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns verified, active professionals. serviceID narrows to
// those offering that service; category narrows to those offering any
// service in that category.
func (s *Service) List(ctx context.Context, serviceID int64, category string) ([]domain.Professional, error) {
	rows, err := s.pros.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	if serviceID > 0 {
		rows = filter(rows, func(p domain.Professional) bool {
			return containsID(p.ServiceIDs, serviceID)
		})
	}

	if category != "" {
		if !domain.ValidCategory(domain.ServiceCategory(category)) {
			return nil, ErrValidation
		}
		inCategory, err := s.serviceIDsInCategory(ctx, rows, domain.ServiceCategory(category))
		if err != nil {
			return nil, err
		}
		rows = filter(rows, func(p domain.Professional) bool {
			for _, id := range p.ServiceIDs {
				if inCategory[id] {
					return true
				}
			}
			return false
		})
	}

	return rows, nil
}

// GetDetail loads the public profile page: the professional plus their
// ten most recent reviews.
func (s *Service) GetDetail(ctx context.Context, id int64) (*ProfileDetail, error) {
	p, err := s.pros.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	recent, _, err := s.reviews.GetByProfessional(ctx, id, 10, 0)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []domain.Review{}
	}

	return &ProfileDetail{Professional: p, RecentReviews: recent}, nil
}

// UpdateProfile patches a profile; only its owner may do so. Rating,
// review count and verification status are not touched here.
func (s *Service) UpdateProfile(ctx context.Context, id, callerID int64, req UpdateProfileRequest) (*domain.Professional, error) {
	p, err := s.ownedProfile(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		p.BusinessName = *req.BusinessName
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ServiceIDs != nil {
		known, err := s.services.GetByIDs(ctx, req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if len(known) != len(dedupe(req.ServiceIDs)) {
			return nil, ErrValidation
		}
		p.ServiceIDs = req.ServiceIDs
	}
	if req.Experience != nil {
		p.Experience = *req.Experience
	}
	if req.Certifications != nil {
		p.Certifications = req.Certifications
	}
	if req.Insurance != nil {
		p.Insurance = req.Insurance
	}
	if req.Location != nil {
		p.Location = req.Location
	}
	if req.Radius != nil {
		p.Radius = *req.Radius
	}
	if req.HourlyRate != nil {
		p.HourlyRate = *req.HourlyRate
	}
	if req.ProfileImage != nil {
		p.ProfileImage = *req.ProfileImage
	}
	if req.PortfolioImages != nil {
		p.PortfolioImages = req.PortfolioImages
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.pros.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateAvailability(ctx context.Context, id, callerID int64, availability map[string]domain.DaySchedule) (*domain.Professional, error) {
	for day, slot := range availability {
		if !validWeekday(day) {
			return nil, ErrValidation
		}
		if slot.Available && (slot.Start == "" || slot.End == "") {
			return nil, ErrValidation
		}
	}

	p, err := s.ownedProfile(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	p.Availability = availability

	if err := s.pros.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateVerification is the admin decision on a pending profile. The
// professional is notified when the status actually changes.
func (s *Service) UpdateVerification(ctx context.Context, id int64, status domain.VerificationStatus) (*domain.Professional, error) {
	switch status {
	case domain.VerificationPending, domain.VerificationVerified, domain.VerificationRejected:
	default:
		return nil, ErrValidation
	}

	p, err := s.pros.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if p.VerificationStatus == status {
		return p, nil
	}

	if err := s.pros.UpdateVerificationStatus(ctx, id, status); err != nil {
		return nil, err
	}
	p.VerificationStatus = status

	if s.notifs != nil {
		_ = s.notifs.NotifyVerificationUpdated(ctx, p.UserID, p.ID, status)
	}

	return p, nil
}

func (s *Service) ownedProfile(ctx context.Context, id, callerID int64) (*domain.Professional, error) {
	p, err := s.pros.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != callerID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) serviceIDsInCategory(ctx context.Context, pros []domain.Professional, category domain.ServiceCategory) (map[int64]bool, error) {
	var all []int64
	seen := map[int64]bool{}
	for _, p := range pros {
		for _, id := range p.ServiceIDs {
			if !seen[id] {
				seen[id] = true
				all = append(all, id)
			}
		}
	}

	services, err := s.services.GetByIDs(ctx, all)
	if err != nil {
		return nil, err
	}

	in := map[int64]bool{}
	for _, svc := range services {
		if svc.Category == category {
			in[svc.ID] = true
		}
	}
	return in, nil
}

func filter(rows []domain.Professional, keep func(domain.Professional) bool) []domain.Professional {
	out := rows[:0:0]
	for _, p := range rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func dedupe(ids []int64) []int64 {
	seen := map[int64]bool{}
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func validWeekday(day string) bool {
	switch strings.ToLower(day) {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
