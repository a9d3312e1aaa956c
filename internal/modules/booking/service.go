package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type Service struct {
	bookings      BookingRepository
	professionals ProfessionalReader
	notifs        NotificationSender
}

func NewService(bookings BookingRepository, professionals ProfessionalReader, notifs NotificationSender) *Service {
	return &Service{
		bookings:      bookings,
		professionals: professionals,
		notifs:        notifs,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		UserID:        userID,
		Service:       req.Service,
		Title:         req.Title,
		Date:          req.Date,
		Time:          req.Time,
		Address:       req.Address,
		City:          req.City,
		ZipCode:       req.ZipCode,
		Notes:         req.Notes,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.BookingUnpaid,
		Image:         req.Image,
	}

	var proUserID int64
	if req.ProfessionalID != nil {
		pro, err := s.professionals.GetByID(ctx, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
		b.ProfessionalID = &pro.ID
		b.Professional = pro.BusinessName
		proUserID = pro.UserID
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil && proUserID > 0 {
		_ = s.notifs.NotifyBookingRequested(ctx, proUserID, b.ID, b.Service, b.Date, b.Time)
	}

	return b, nil
}

// List returns the caller's own bookings; professionals and admins see
// every booking.
func (s *Service) List(ctx context.Context, userID int64, role string) ([]domain.Booking, error) {
	if role == string(domain.RoleProfessional) || role == string(domain.RoleAdmin) {
		return s.bookings.GetAll(ctx)
	}
	return s.bookings.GetByUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, id, userID int64, role string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID && role != string(domain.RoleProfessional) && role != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id, userID int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrValidation
	}

	b.Service = req.Service
	b.Title = req.Title
	b.Date = req.Date
	b.Time = req.Time
	b.Address = req.Address
	b.City = req.City
	b.ZipCode = req.ZipCode
	b.Notes = req.Notes

	if req.ProfessionalID != nil {
		pro, err := s.professionals.GetByID(ctx, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
		b.ProfessionalID = &pro.ID
		b.Professional = pro.BusinessName
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus applies the state machine. Owners may only cancel;
// professionals and admins may complete or cancel.
func (s *Service) UpdateStatus(ctx context.Context, id, actorID int64, role string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if newStatus != domain.BookingCompleted && newStatus != domain.BookingCancelled {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	isStaff := role == string(domain.RoleProfessional) || role == string(domain.RoleAdmin)
	isOwner := b.UserID == actorID
	if !isOwner && !isStaff {
		return nil, ErrForbidden
	}
	if isOwner && !isStaff && newStatus != domain.BookingCancelled {
		return nil, ErrForbidden
	}

	if !b.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	b.Status = newStatus

	if s.notifs != nil {
		switch newStatus {
		case domain.BookingCompleted:
			_ = s.notifs.NotifyBookingCompleted(ctx, b.UserID, b.ID)
		case domain.BookingCancelled:
			_ = s.notifs.NotifyBookingCancelled(ctx, b.UserID, b.ID)
		}
	}

	return b, nil
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.UserID != userID {
		return ErrForbidden
	}
	return s.bookings.Delete(ctx, id)
}
