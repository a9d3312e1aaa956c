package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 444 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) CreateBatch(ctx context.Context, ns []domain.Notification) (int, error) {
	args := m.Called(ctx, ns)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserIDLister struct {
	mock.Mock
}

func (m *MockUserIDLister) ListIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func TestBroadcast_ReturnsAudienceCount(t *testing.T) {
	repo := new(MockNotificationRepository)
	users := new(MockUserIDLister)
	svc := NewService(repo, users)

	ids := make([]int64, 50)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	users.On("ListIDs", mock.Anything).Return(ids, nil)
	repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(ns []domain.Notification) bool {
		return len(ns) == 50 && ns[0].Type == domain.NotifSystemMessage && !ns[0].ExpiresAt.IsZero()
	})).Return(50, nil)

	count, err := svc.Broadcast(context.Background(), BroadcastRequest{
		Title:   "Maintenance window",
		Message: "We will be down briefly tonight.",
	})

	assert.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	_, err := svc.Create(context.Background(), CreateNotificationRequest{
		UserID: 10, Type: "carrier_pigeon", Title: "t", Message: "m",
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_SetsExpiry(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		ttl := n.ExpiresAt.Sub(n.CreatedAt)
		return ttl == domain.NotificationTTL
	})).Return(nil)

	n, err := svc.Create(context.Background(), CreateNotificationRequest{
		UserID: 10, Type: "system_message", Title: "t", Message: "m",
	})

	assert.NoError(t, err)
	assert.False(t, n.Expired(time.Now()))
	assert.True(t, n.Expired(time.Now().Add(31*24*time.Hour)))
}

func TestDelete_OwnerAllowed(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	repo.On("GetByID", mock.Anything, int64(444)).Return(&domain.Notification{ID: 444, UserID: 10}, nil)
	repo.On("Delete", mock.Anything, int64(444)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 444, 10, "user"))
	repo.AssertExpectations(t)
}

func TestDelete_AdminAllowed(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	repo.On("GetByID", mock.Anything, int64(444)).Return(&domain.Notification{ID: 444, UserID: 10}, nil)
	repo.On("Delete", mock.Anything, int64(444)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 444, 99, "admin"))
}

func TestDelete_StrangerForbidden(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	repo.On("GetByID", mock.Anything, int64(444)).Return(&domain.Notification{ID: 444, UserID: 10}, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), 444, 99, "user"), ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	repo.On("MarkRead", mock.Anything, int64(404), int64(10)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.MarkRead(context.Background(), 404, 10), ErrNotFound)
}

func TestNotifyBookingRequested_CarriesBookingRef(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 20 &&
			n.Type == domain.NotifBookingRequest &&
			n.Data != nil && n.Data.BookingID != nil && *n.Data.BookingID == 5 &&
			n.Channels.InApp
	})).Return(nil)

	err := svc.NotifyBookingRequested(context.Background(), 20, 5, "Plumbing", "2025-07-10", "10:00")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSweep_ReportsRemovedRows(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, new(MockUserIDLister))

	repo.On("DeleteExpired", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(7), nil)

	n, err := svc.Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
