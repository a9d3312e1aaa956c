package review

import (
	"context"

	"fixnow/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	GetByProfessional(ctx context.Context, professionalID int64, limit, offset int) ([]domain.Review, int64, error)
	Update(ctx context.Context, rv *domain.Review) error
	SetResponse(ctx context.Context, reviewID int64, comment string) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
	Aggregate(ctx context.Context, professionalID int64) (float64, int, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type ProfessionalStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	SetRating(ctx context.Context, id int64, rating float64, count int) error
}

type NotificationSender interface {
	NotifyReviewReceived(ctx context.Context, userID, reviewID, professionalID int64, rating int) error
}
