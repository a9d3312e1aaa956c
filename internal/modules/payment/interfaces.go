package payment

import (
	"context"

	"fixnow/internal/domain"
	"fixnow/internal/gateway"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (*domain.Payment, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	MarkCompletedIdempotent(ctx context.Context, intentID string) (bool, error)
}

type BookingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.BookingPaymentStatus) error
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*gateway.Intent, error)
	VerifyAndParse(body []byte, sigHeader string) (*gateway.Event, error)
}

type NotificationSender interface {
	NotifyPaymentReceived(ctx context.Context, userID, paymentID, bookingID int64, amount float64) error
	NotifyPaymentFailed(ctx context.Context, userID, paymentID, bookingID int64) error
}
