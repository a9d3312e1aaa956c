package admin

import (
	"context"
	"time"

	"fixnow/internal/domain"
	"fixnow/internal/repository"
)

type DashboardStore interface {
	Counts(ctx context.Context) (*repository.PlatformCounts, error)
	TotalRevenue(ctx context.Context) (float64, error)
	ListUsers(ctx context.Context, role domain.UserRole, search string, limit, offset int) ([]domain.User, int64, error)
	ListBookings(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, int64, error)
	CompletedPaymentsSince(ctx context.Context, since time.Time) ([]domain.Payment, error)
	BookingsCreatedBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error)
	CompletedPaymentsBetween(ctx context.Context, start, end time.Time) ([]domain.Payment, error)
}

type UserRoleUpdater interface {
	UpdateRole(ctx context.Context, userID int64, role domain.UserRole) error
}

type VerificationLister interface {
	ListByVerificationStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.Professional, error)
}
