package booking

import (
	"context"

	"fixnow/internal/domain"
)

// BookingRepository defines the store operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type ProfessionalReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

type NotificationSender interface {
	NotifyBookingRequested(ctx context.Context, proUserID, bookingID int64, service, date, timeOfDay string) error
	NotifyBookingCompleted(ctx context.Context, clientUserID, bookingID int64) error
	NotifyBookingCancelled(ctx context.Context, clientUserID, bookingID int64) error
}
