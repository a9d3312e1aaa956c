package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fixnow/internal/domain"
	"fixnow/internal/gateway"
)

type Service struct {
	payments PaymentRepository
	bookings BookingStore
	intents  IntentCreator
	notifs   NotificationSender
	loggerf  func(format string, args ...interface{})
}

func NewService(
	payments PaymentRepository,
	bookings BookingStore,
	intents IntentCreator,
	notifs NotificationSender,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		payments: payments,
		bookings: bookings,
		intents:  intents,
		notifs:   notifs,
		loggerf:  loggerf,
	}
}

// newTransactionID produces a collision-resistant transaction id.
func newTransactionID() string {
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixNano(), strings.Split(uuid.NewString(), "-")[0])
}

// CreateDirect records a payment made outside the card gateway (cod,
// upi). Such payments are completed on creation and cascade at once.
func (s *Service) CreateDirect(ctx context.Context, userID int64, req CreatePaymentRequest) (*domain.Payment, error) {
	method := domain.PaymentMethod(req.Method)
	if method != domain.MethodCard && method != domain.MethodUPI && method != domain.MethodCOD {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	p := &domain.Payment{
		UserID:        userID,
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Currency:      "USD",
		Method:        method,
		Status:        domain.PaymentCompleted,
		TransactionID: newTransactionID(),
		Service:       req.Service,
		Location:      req.Location,
		Date:          req.Date,
		Time:          req.Time,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	s.cascadeBookingPaid(ctx, p)

	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentReceived(ctx, p.UserID, p.ID, p.BookingID, p.Amount)
	}

	return p, nil
}

// CreateIntent registers a gateway payment intent and persists a
// pending payment keyed by the intent id.
func (s *Service) CreateIntent(ctx context.Context, userID int64, req CreateIntentRequest) (*CreateIntentResponse, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	amountCents := int64(math.Round(req.Amount * 100))
	intent, err := s.intents.CreateIntent(ctx, amountCents, currency, map[string]string{
		"booking_id": strconv.FormatInt(req.BookingID, 10),
		"user_id":    strconv.FormatInt(userID, 10),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	p := &domain.Payment{
		UserID:        userID,
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Currency:      currency,
		Method:        domain.MethodCard,
		Status:        domain.PaymentPending,
		TransactionID: newTransactionID(),
		IntentID:      intent.ID,
		Service:       b.Service,
		Location:      b.City,
		Date:          b.Date,
		Time:          b.Time,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	return &CreateIntentResponse{
		PaymentID:    p.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// Confirm settles the payment for a gateway intent. It is idempotent:
// only the call that actually flips pending->completed runs the booking
// cascade and emits the notification.
func (s *Service) Confirm(ctx context.Context, userID int64, intentID string) (*domain.Payment, error) {
	p, err := s.payments.GetByIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if userID > 0 && p.UserID != userID {
		return nil, ErrForbidden
	}

	changed, err := s.payments.MarkCompletedIdempotent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if !changed {
		s.loggerf("level=info msg=idempotent confirm, already settled intent_id=%s", intentID)
		return s.payments.GetByIntentID(ctx, intentID)
	}
	p.Status = domain.PaymentCompleted

	s.cascadeBookingPaid(ctx, p)

	if s.notifs != nil {
		_ = s.notifs.NotifyPaymentReceived(ctx, p.UserID, p.ID, p.BookingID, p.Amount)
	}

	return p, nil
}

// HandleWebhook verifies the gateway signature before trusting the
// payload, then applies the same idempotent settlement as Confirm.
func (s *Service) HandleWebhook(ctx context.Context, body []byte, sigHeader string) error {
	ev, err := s.intents.VerifyAndParse(body, sigHeader)
	if err != nil {
		if errors.Is(err, gateway.ErrInvalidSignature) {
			return ErrInvalidSignature
		}
		return ErrValidation
	}

	switch ev.Type {
	case "payment_intent.succeeded":
		_, err := s.Confirm(ctx, 0, ev.Data.Object.ID)
		if errors.Is(err, ErrNotFound) {
			// Unknown intent: acknowledge, nothing to settle.
			s.loggerf("level=warn msg=webhook for unknown intent intent_id=%s", ev.Data.Object.ID)
			return nil
		}
		return err

	case "payment_intent.payment_failed":
		p, err := s.payments.GetByIntentID(ctx, ev.Data.Object.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if p.Status != domain.PaymentPending {
			return nil
		}
		if err := s.payments.UpdateStatus(ctx, p.ID, domain.PaymentFailed); err != nil {
			return err
		}
		if s.notifs != nil {
			_ = s.notifs.NotifyPaymentFailed(ctx, p.UserID, p.ID, p.BookingID)
		}
		return nil
	}

	// Unhandled event types are acknowledged.
	return nil
}

func (s *Service) History(ctx context.Context, userID int64) ([]domain.Payment, error) {
	return s.payments.GetByUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, id, userID int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, userID int64, status domain.PaymentStatus) (*domain.Payment, error) {
	switch status {
	case domain.PaymentPending, domain.PaymentCompleted, domain.PaymentFailed, domain.PaymentRefunded:
	default:
		return nil, ErrValidation
	}

	p, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.payments.UpdateStatus(ctx, p.ID, status); err != nil {
		return nil, err
	}
	p.Status = status
	return p, nil
}

// cascadeBookingPaid is best effort: the payment has already settled,
// so a failing booking update is logged, never rolled back.
func (s *Service) cascadeBookingPaid(ctx context.Context, p *domain.Payment) {
	if err := s.bookings.UpdatePaymentStatus(ctx, p.BookingID, domain.BookingPaid); err != nil {
		s.loggerf("level=error msg=failed to mark booking paid booking_id=%d payment_id=%d err=%v",
			p.BookingID, p.ID, err)
	}
}
