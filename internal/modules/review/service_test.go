package review

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 888 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) GetByProfessional(ctx context.Context, professionalID int64, limit, offset int) ([]domain.Review, int64, error) {
	args := m.Called(ctx, professionalID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockReviewRepository) SetResponse(ctx context.Context, reviewID int64, comment string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) Aggregate(ctx context.Context, professionalID int64) (float64, int, error) {
	args := m.Called(ctx, professionalID)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockProfessionalStore struct {
	mock.Mock
}

func (m *MockProfessionalStore) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalStore) SetRating(ctx context.Context, id int64, rating float64, count int) error {
	args := m.Called(ctx, id, rating, count)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyReviewReceived(ctx context.Context, userID, reviewID, professionalID int64, rating int) error {
	args := m.Called(ctx, userID, reviewID, professionalID, rating)
	return args.Error(0)
}

func completedBooking(id, userID, proID int64) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		UserID:         userID,
		ProfessionalID: &proID,
		Status:         domain.BookingCompleted,
	}
}

func TestCreate_RecomputesRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	pros := new(MockProfessionalStore)
	notifs := new(MockNotificationSender)
	svc := NewService(reviews, bookings, pros, notifs)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(completedBooking(5, 10, 3), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)
	reviews.On("Aggregate", mock.Anything, int64(3)).Return(4.0, 1, nil)
	pros.On("SetRating", mock.Anything, int64(3), 4.0, 1).Return(nil)
	pros.On("GetByID", mock.Anything, int64(3)).Return(&domain.Professional{ID: 3, UserID: 20}, nil)
	notifs.On("NotifyReviewReceived", mock.Anything, int64(20), int64(888), int64(3), 4).Return(nil)

	rv, err := svc.Create(context.Background(), 10, CreateReviewRequest{BookingID: 5, Rating: 4})

	assert.NoError(t, err)
	assert.True(t, rv.IsVerified)
	assert.Equal(t, int64(3), rv.ProfessionalID)
	pros.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestCreate_TwoReviewsAverageToThree(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, bookings, pros, nil)

	bookings.On("GetByID", mock.Anything, int64(6)).Return(completedBooking(6, 10, 3), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(6)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)
	// 4 then 2 across two bookings: mean is 3.0 over 2 reviews.
	reviews.On("Aggregate", mock.Anything, int64(3)).Return(3.0, 2, nil)
	pros.On("SetRating", mock.Anything, int64(3), 3.0, 2).Return(nil)
	pros.On("GetByID", mock.Anything, int64(3)).Return(&domain.Professional{ID: 3, UserID: 20}, nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{BookingID: 6, Rating: 2})

	assert.NoError(t, err)
	pros.AssertCalled(t, "SetRating", mock.Anything, int64(3), 3.0, 2)
}

func TestCreate_RoundsToOneDecimal(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, bookings, pros, nil)

	bookings.On("GetByID", mock.Anything, int64(7)).Return(completedBooking(7, 10, 3), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(7)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)
	reviews.On("Aggregate", mock.Anything, int64(3)).Return(4.333333333333333, 3, nil)
	pros.On("SetRating", mock.Anything, int64(3), 4.3, 3).Return(nil)
	pros.On("GetByID", mock.Anything, int64(3)).Return(&domain.Professional{ID: 3, UserID: 20}, nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{BookingID: 7, Rating: 5})

	assert.NoError(t, err)
	pros.AssertCalled(t, "SetRating", mock.Anything, int64(3), 4.3, 3)
}

func TestCreate_RejectsIncompleteBooking(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	svc := NewService(reviews, bookings, new(MockProfessionalStore), nil)

	proID := int64(3)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, UserID: 10, ProfessionalID: &proID, Status: domain.BookingConfirmed,
	}, nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{BookingID: 5, Rating: 4})

	assert.ErrorIs(t, err, ErrBookingNotComplete)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RejectsSecondReview(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	svc := NewService(reviews, bookings, new(MockProfessionalStore), nil)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(completedBooking(5, 10, 3), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(true, nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{BookingID: 5, Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreate_RejectsStrangersBooking(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	svc := NewService(reviews, bookings, new(MockProfessionalStore), nil)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(completedBooking(5, 99, 3), nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{BookingID: 5, Rating: 4})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreate_RejectsOverlongComment(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	svc := NewService(reviews, bookings, new(MockProfessionalStore), nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{
		BookingID: 5,
		Rating:    4,
		Comment:   strings.Repeat("x", 1001),
	})

	assert.ErrorIs(t, err, ErrValidation)
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_AcceptsCommentAtLimit(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, bookings, pros, nil)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(completedBooking(5, 10, 3), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(5)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)
	reviews.On("Aggregate", mock.Anything, int64(3)).Return(4.0, 1, nil)
	pros.On("SetRating", mock.Anything, int64(3), 4.0, 1).Return(nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{
		BookingID: 5,
		Rating:    4,
		Comment:   strings.Repeat("x", 1000),
	})

	assert.NoError(t, err)
}

func TestCreate_RejectsOutOfRangeCategoryRating(t *testing.T) {
	reviews := new(MockReviewRepository)
	bookings := new(MockBookingReader)
	svc := NewService(reviews, bookings, new(MockProfessionalStore), nil)

	_, err := svc.Create(context.Background(), 10, CreateReviewRequest{
		BookingID:  5,
		Rating:     4,
		Categories: &domain.CategoryRatings{Punctuality: 6, Quality: 4},
	})

	assert.ErrorIs(t, err, ErrValidation)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_ReviewerOnly(t *testing.T) {
	reviews := new(MockReviewRepository)
	svc := NewService(reviews, new(MockBookingReader), new(MockProfessionalStore), nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3, Rating: 4,
	}, nil)

	comment := "edited"
	_, err := svc.Update(context.Background(), 888, 99, UpdateReviewRequest{Comment: &comment})

	assert.ErrorIs(t, err, ErrForbidden)
	reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_RatingChangeRecomputes(t *testing.T) {
	reviews := new(MockReviewRepository)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, new(MockBookingReader), pros, nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3, Rating: 4,
	}, nil)
	reviews.On("Update", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)
	reviews.On("Aggregate", mock.Anything, int64(3)).Return(2.0, 1, nil)
	pros.On("SetRating", mock.Anything, int64(3), 2.0, 1).Return(nil)

	rating := 2
	rv, err := svc.Update(context.Background(), 888, 10, UpdateReviewRequest{Rating: &rating})

	assert.NoError(t, err)
	assert.Equal(t, 2, rv.Rating)
	pros.AssertExpectations(t)
}

func TestUpdate_CommentOnlySkipsRecompute(t *testing.T) {
	reviews := new(MockReviewRepository)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, new(MockBookingReader), pros, nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3, Rating: 4,
	}, nil)
	reviews.On("Update", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	comment := "still great"
	_, err := svc.Update(context.Background(), 888, 10, UpdateReviewRequest{Comment: &comment})

	assert.NoError(t, err)
	pros.AssertNotCalled(t, "SetRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_RejectsOverlongComment(t *testing.T) {
	reviews := new(MockReviewRepository)
	svc := NewService(reviews, new(MockBookingReader), new(MockProfessionalStore), nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3, Rating: 4,
	}, nil)

	comment := strings.Repeat("x", 1001)
	_, err := svc.Update(context.Background(), 888, 10, UpdateReviewRequest{Comment: &comment})

	assert.ErrorIs(t, err, ErrValidation)
	reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRespond_RejectsOverlongComment(t *testing.T) {
	reviews := new(MockReviewRepository)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, new(MockBookingReader), pros, nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3,
	}, nil)
	pros.On("GetByID", mock.Anything, int64(3)).Return(&domain.Professional{ID: 3, UserID: 20}, nil)

	_, err := svc.Respond(context.Background(), 888, 20, strings.Repeat("x", 1001))

	assert.ErrorIs(t, err, ErrValidation)
	reviews.AssertNotCalled(t, "SetResponse", mock.Anything, mock.Anything, mock.Anything)
}

func TestRespond_ProfileOwnerOnly(t *testing.T) {
	reviews := new(MockReviewRepository)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, new(MockBookingReader), pros, nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3,
	}, nil)
	pros.On("GetByID", mock.Anything, int64(3)).Return(&domain.Professional{ID: 3, UserID: 20}, nil)

	_, err := svc.Respond(context.Background(), 888, 77, "thanks!")

	assert.ErrorIs(t, err, ErrForbidden)
	reviews.AssertNotCalled(t, "SetResponse", mock.Anything, mock.Anything, mock.Anything)
}

func TestRespond_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, new(MockBookingReader), pros, nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3,
	}, nil)
	pros.On("GetByID", mock.Anything, int64(3)).Return(&domain.Professional{ID: 3, UserID: 20}, nil)
	reviews.On("SetResponse", mock.Anything, int64(888), "thanks!").Return(&domain.Review{ID: 888}, nil)

	rv, err := svc.Respond(context.Background(), 888, 20, "thanks!")

	assert.NoError(t, err)
	assert.Equal(t, int64(888), rv.ID)
}

func TestDelete_Recomputes(t *testing.T) {
	reviews := new(MockReviewRepository)
	pros := new(MockProfessionalStore)
	svc := NewService(reviews, new(MockBookingReader), pros, nil)

	reviews.On("GetByID", mock.Anything, int64(888)).Return(&domain.Review{
		ID: 888, ReviewerID: 10, ProfessionalID: 3, Rating: 4,
	}, nil)
	reviews.On("Delete", mock.Anything, int64(888)).Return(nil)
	reviews.On("Aggregate", mock.Anything, int64(3)).Return(0.0, 0, nil)
	pros.On("SetRating", mock.Anything, int64(3), 0.0, 0).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 888))
	pros.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	reviews := new(MockReviewRepository)
	svc := NewService(reviews, new(MockBookingReader), new(MockProfessionalStore), nil)

	reviews.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrNotFound)
}
