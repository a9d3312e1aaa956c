package professional

import "fixnow/internal/domain"

type CreateProfileRequest struct {
	BusinessName    string                        `json:"business_name" binding:"required"`
	Description     string                        `json:"description"`
	ServiceIDs      []int64                       `json:"service_ids" binding:"required,min=1"`
	Experience      int                           `json:"experience" binding:"gte=0"`
	Certifications  []domain.Certification        `json:"certifications"`
	Insurance       *domain.Insurance             `json:"insurance"`
	Availability    map[string]domain.DaySchedule `json:"availability"`
	Location        *domain.Location              `json:"location"`
	Radius          int                           `json:"radius"`
	HourlyRate      float64                       `json:"hourly_rate" binding:"gte=0"`
	ProfileImage    string                        `json:"profile_image"`
	PortfolioImages []string                      `json:"portfolio_images"`
}

type UpdateProfileRequest struct {
	BusinessName    *string                `json:"business_name"`
	Description     *string                `json:"description"`
	ServiceIDs      []int64                `json:"service_ids"`
	Experience      *int                   `json:"experience"`
	Certifications  []domain.Certification `json:"certifications"`
	Insurance       *domain.Insurance      `json:"insurance"`
	Location        *domain.Location       `json:"location"`
	Radius          *int                   `json:"radius"`
	HourlyRate      *float64               `json:"hourly_rate"`
	ProfileImage    *string                `json:"profile_image"`
	PortfolioImages []string               `json:"portfolio_images"`
	IsActive        *bool                  `json:"is_active"`
}

type UpdateAvailabilityRequest struct {
	Availability map[string]domain.DaySchedule `json:"availability" binding:"required"`
}

type UpdateVerificationRequest struct {
	Status string `json:"status" binding:"required"`
}

// ProfileDetail is the public professional page: the profile plus its
// most recent reviews.
type ProfileDetail struct {
	Professional  *domain.Professional `json:"professional"`
	RecentReviews []domain.Review      `json:"recent_reviews"`
}
