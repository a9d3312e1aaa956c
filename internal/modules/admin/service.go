package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fixnow/internal/domain"
	"fixnow/internal/repository"
)

type Service struct {
	store DashboardStore
	users UserRoleUpdater
	pros  VerificationLister
}

func NewService(store DashboardStore, users UserRoleUpdater, pros VerificationLister) *Service {
	return &Service{store: store, users: users, pros: pros}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	counts, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.store.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Counts: counts, TotalRevenue: revenue}, nil
}

func (s *Service) ListUsers(ctx context.Context, role, search string, page, limit int) ([]domain.User, int64, error) {
	if role != "" {
		switch domain.UserRole(role) {
		case domain.RoleUser, domain.RoleProfessional, domain.RoleAdmin:
		default:
			return nil, 0, ErrValidation
		}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.store.ListUsers(ctx, domain.UserRole(role), search, limit, (page-1)*limit)
}

func (s *Service) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	switch domain.UserRole(role) {
	case domain.RoleUser, domain.RoleProfessional, domain.RoleAdmin:
	default:
		return ErrValidation
	}

	if err := s.users.UpdateRole(ctx, userID, domain.UserRole(role)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListBookings(ctx context.Context, status, service, dateFrom, dateTo string, page, limit int) ([]domain.Booking, int64, error) {
	if status != "" {
		switch domain.BookingStatus(status) {
		case domain.BookingConfirmed, domain.BookingCompleted, domain.BookingCancelled:
		default:
			return nil, 0, ErrValidation
		}
	}
	for _, d := range []string{dateFrom, dateTo} {
		if d != "" {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return nil, 0, ErrValidation
			}
		}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return s.store.ListBookings(ctx, repository.BookingFilter{
		Status:   domain.BookingStatus(status),
		Service:  service,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
}

// PaymentAnalytics buckets completed-payment revenue by period. Buckets
// are computed here rather than in SQL so postgres and sqlite agree.
func (s *Service) PaymentAnalytics(ctx context.Context, period string) ([]AnalyticsBucket, error) {
	var since time.Time
	now := time.Now().UTC()
	switch period {
	case "week":
		since = now.AddDate(0, 0, -12*7)
	case "month":
		since = now.AddDate(-1, 0, 0)
	case "year":
		since = now.AddDate(-5, 0, 0)
	default:
		return nil, ErrValidation
	}

	payments, err := s.store.CompletedPaymentsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return bucketize(payments, func(t time.Time) string {
		switch period {
		case "week":
			return isoWeek(t)
		case "month":
			return t.Format("2006-01")
		default:
			return t.Format("2006")
		}
	}), nil
}

// Report builds the per-day bookings or revenue report over
// [startDate, endDate]; empty bounds default to the last 30 days.
func (s *Service) Report(ctx context.Context, reportType, startDate, endDate string) ([]ReportRow, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30)
	end := now

	var err error
	if startDate != "" {
		if start, err = time.Parse("2006-01-02", startDate); err != nil {
			return nil, ErrValidation
		}
	}
	if endDate != "" {
		if end, err = time.Parse("2006-01-02", endDate); err != nil {
			return nil, ErrValidation
		}
	}
	if end.Before(start) {
		return nil, ErrValidation
	}
	endExcl := end.AddDate(0, 0, 1)

	switch reportType {
	case "bookings":
		rows, err := s.store.BookingsCreatedBetween(ctx, start, endExcl)
		if err != nil {
			return nil, err
		}
		out := []ReportRow{}
		byDay := map[string]int{}
		var order []string
		for _, b := range rows {
			day := b.CreatedAt.UTC().Format("2006-01-02")
			if _, ok := byDay[day]; !ok {
				order = append(order, day)
			}
			byDay[day]++
		}
		for _, day := range order {
			out = append(out, ReportRow{Date: day, Count: byDay[day]})
		}
		return out, nil

	case "revenue":
		rows, err := s.store.CompletedPaymentsBetween(ctx, start, endExcl)
		if err != nil {
			return nil, err
		}
		out := []ReportRow{}
		type agg struct {
			count   int
			revenue float64
		}
		byDay := map[string]*agg{}
		var order []string
		for _, p := range rows {
			day := p.CreatedAt.UTC().Format("2006-01-02")
			if _, ok := byDay[day]; !ok {
				order = append(order, day)
				byDay[day] = &agg{}
			}
			byDay[day].count++
			byDay[day].revenue += p.Amount
		}
		for _, day := range order {
			out = append(out, ReportRow{Date: day, Count: byDay[day].count, Revenue: byDay[day].revenue})
		}
		return out, nil
	}

	return nil, ErrValidation
}

func (s *Service) VerificationQueue(ctx context.Context, status string) ([]domain.Professional, error) {
	if status == "" {
		status = string(domain.VerificationPending)
	}
	switch domain.VerificationStatus(status) {
	case domain.VerificationPending, domain.VerificationVerified, domain.VerificationRejected:
	default:
		return nil, ErrValidation
	}
	return s.pros.ListByVerificationStatus(ctx, domain.VerificationStatus(status))
}

func bucketize(payments []domain.Payment, key func(time.Time) string) []AnalyticsBucket {
	out := []AnalyticsBucket{}
	index := map[string]int{}
	for _, p := range payments {
		k := key(p.CreatedAt.UTC())
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, AnalyticsBucket{Bucket: k})
			i = len(out) - 1
		}
		out[i].Count++
		out[i].Revenue += p.Amount
	}
	return out
}

// isoWeek renders an ISO-8601 year-week label, e.g. 2025-W28.
func isoWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
