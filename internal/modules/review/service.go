package review

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"fixnow/internal/domain"
)

const maxCommentLen = 1000

type Service struct {
	reviews  ReviewRepository
	bookings BookingReader
	pros     ProfessionalStore
	notifs   NotificationSender
}

func NewService(reviews ReviewRepository, bookings BookingReader, pros ProfessionalStore, notifs NotificationSender) *Service {
	return &Service{reviews: reviews, bookings: bookings, pros: pros, notifs: notifs}
}

// ListByProfessional returns one page of reviews plus the overall
// aggregate for the professional, not just the page's.
func (s *Service) ListByProfessional(ctx context.Context, professionalID int64, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	rows, total, err := s.reviews.GetByProfessional(ctx, professionalID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.Review{}
	}

	avg, count, err := s.reviews.Aggregate(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Reviews: rows,
		Total:   total,
		Stats: Stats{
			AverageRating: roundRating(avg),
			TotalReviews:  count,
		},
	}, nil
}

// Create accepts a review only for the caller's own completed booking,
// at most one per booking. The professional's derived rating is
// recomputed before returning so the caller reads their own write.
func (s *Service) Create(ctx context.Context, reviewerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if !validComment(req.Comment) || !validCategories(req.Categories) {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != reviewerID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotComplete
	}
	if b.ProfessionalID == nil {
		return nil, ErrValidation
	}

	taken, err := s.reviews.ExistsForBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		BookingID:      req.BookingID,
		ReviewerID:     reviewerID,
		ProfessionalID: *b.ProfessionalID,
		Rating:         req.Rating,
		Comment:        req.Comment,
		Categories:     req.Categories,
		Images:         req.Images,
		IsVerified:     true, // tied to a completed booking
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	if err := s.recomputeRating(ctx, rv.ProfessionalID); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if pro, perr := s.pros.GetByID(ctx, rv.ProfessionalID); perr == nil {
			_ = s.notifs.NotifyReviewReceived(ctx, pro.UserID, rv.ID, rv.ProfessionalID, rv.Rating)
		}
	}

	return rv, nil
}

// Update lets the reviewer revise their review; the derived rating is
// recomputed when the score changes.
func (s *Service) Update(ctx context.Context, id, reviewerID int64, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.getReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv.ReviewerID != reviewerID {
		return nil, ErrForbidden
	}

	ratingChanged := false
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrValidation
		}
		ratingChanged = rv.Rating != *req.Rating
		rv.Rating = *req.Rating
	}
	if req.Comment != nil {
		if !validComment(*req.Comment) {
			return nil, ErrValidation
		}
		rv.Comment = *req.Comment
	}
	if req.Categories != nil {
		if !validCategories(req.Categories) {
			return nil, ErrValidation
		}
		rv.Categories = req.Categories
	}
	if req.Images != nil {
		rv.Images = req.Images
	}

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}

	if ratingChanged {
		if err := s.recomputeRating(ctx, rv.ProfessionalID); err != nil {
			return nil, err
		}
	}

	return rv, nil
}

// Respond records the professional's public reply on a review about
// their own profile.
func (s *Service) Respond(ctx context.Context, id, callerID int64, comment string) (*domain.Review, error) {
	rv, err := s.getReview(ctx, id)
	if err != nil {
		return nil, err
	}

	pro, err := s.pros.GetByID(ctx, rv.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if pro.UserID != callerID {
		return nil, ErrForbidden
	}

	comment = strings.TrimSpace(comment)
	if comment == "" || !validComment(comment) {
		return nil, ErrValidation
	}

	return s.reviews.SetResponse(ctx, id, comment)
}

// Delete removes a review (moderation path) and recomputes the rating.
func (s *Service) Delete(ctx context.Context, id int64) error {
	rv, err := s.getReview(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.recomputeRating(ctx, rv.ProfessionalID)
}

func (s *Service) getReview(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) recomputeRating(ctx context.Context, professionalID int64) error {
	avg, count, err := s.reviews.Aggregate(ctx, professionalID)
	if err != nil {
		return err
	}
	return s.pros.SetRating(ctx, professionalID, roundRating(avg), count)
}

func validComment(comment string) bool {
	return utf8.RuneCountInString(comment) <= maxCommentLen
}

// validCategories checks the optional 1-5 sub-ratings; a zero value
// means the category was not rated.
func validCategories(c *domain.CategoryRatings) bool {
	if c == nil {
		return true
	}
	for _, v := range []int{c.Punctuality, c.Quality, c.Communication, c.Professionalism} {
		if v < 0 || v > 5 {
			return false
		}
	}
	return true
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
