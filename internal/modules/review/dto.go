package review

import "fixnow/internal/domain"

type CreateReviewRequest struct {
	BookingID  int64                   `json:"booking_id" binding:"required"`
	Rating     int                     `json:"rating" binding:"required,min=1,max=5"`
	Comment    string                  `json:"comment" binding:"max=1000"`
	Categories *domain.CategoryRatings `json:"categories"`
	Images     []string                `json:"images"`
}

type UpdateReviewRequest struct {
	Rating     *int                    `json:"rating"`
	Comment    *string                 `json:"comment" binding:"omitempty,max=1000"`
	Categories *domain.CategoryRatings `json:"categories"`
	Images     []string                `json:"images"`
}

type RespondRequest struct {
	Comment string `json:"comment" binding:"required,max=1000"`
}

// Stats is the aggregate block returned alongside a professional's
// review listing.
type Stats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

type ListResult struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int64           `json:"total"`
	Stats   Stats           `json:"stats"`
}
