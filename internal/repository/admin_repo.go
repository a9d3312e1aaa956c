package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

// AdminRepository backs the dashboard queries. It reads across several
// tables, so it gets its own type instead of living on one entity repo.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

type PlatformCounts struct {
	Users             int64 `json:"users"`
	Professionals     int64 `json:"professionals"`
	Bookings          int64 `json:"bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	Reviews           int64 `json:"reviews"`
}

func (r *AdminRepository) Counts(ctx context.Context) (*PlatformCounts, error) {
	var c PlatformCounts
	db := r.db.WithContext(ctx)

	pairs := []struct {
		model any
		dst   *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&domain.User{}, &c.Users, nil},
		{&domain.Professional{}, &c.Professionals, nil},
		{&domain.Booking{}, &c.Bookings, nil},
		{&domain.Booking{}, &c.CompletedBookings, func(q *gorm.DB) *gorm.DB {
			return q.Where("status = ?", string(domain.BookingCompleted))
		}},
		{&domain.Review{}, &c.Reviews, nil},
	}
	for _, p := range pairs {
		q := db.Model(p.model)
		if p.scope != nil {
			q = p.scope(q)
		}
		if err := q.Count(p.dst).Error; err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// TotalRevenue sums completed payments only.
func (r *AdminRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", string(domain.PaymentCompleted)).
		Scan(&total).Error
	return total, err
}

func (r *AdminRepository) ListUsers(ctx context.Context, role domain.UserRole, search string, limit, offset int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := r.db.WithContext(ctx).Model(&domain.User{})
	if role != "" {
		q = q.Where("role = ?", string(role))
	}
	if search != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.User
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

type BookingFilter struct {
	Status   domain.BookingStatus
	Service  string
	DateFrom string // YYYY-MM-DD, inclusive
	DateTo   string // YYYY-MM-DD, inclusive
	Limit    int
	Offset   int
}

func (r *AdminRepository) ListBookings(ctx context.Context, f BookingFilter) ([]domain.Booking, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := r.db.WithContext(ctx).Model(&domain.Booking{})
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.Service != "" {
		q = q.Where("service = ?", f.Service)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Booking
	err := q.Preload("User").Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CompletedPaymentsSince returns completed payments created at or after
// since. Bucketing happens in the service so the query is portable.
func (r *AdminRepository) CompletedPaymentsSince(ctx context.Context, since time.Time) ([]domain.Payment, error) {
	var rows []domain.Payment
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at >= ?", string(domain.PaymentCompleted), since).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// BookingsCreatedBetween returns bookings created in [start, end).
func (r *AdminRepository) BookingsCreatedBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	var rows []domain.Booking
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// CompletedPaymentsBetween returns completed payments created in
// [start, end).
func (r *AdminRepository) CompletedPaymentsBetween(ctx context.Context, start, end time.Time) ([]domain.Payment, error) {
	var rows []domain.Payment
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at >= ? AND created_at < ?", string(domain.PaymentCompleted), start, end).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
