package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fixnow/internal/domain"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 321 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActive(ctx context.Context, category domain.ServiceCategory) ([]domain.Service, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_Defaults(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Service")).Return(nil)

	out, err := svc.Create(context.Background(), CreateServiceRequest{
		Name:     "Drain Cleaning",
		Category: "plumbing",
	})

	assert.NoError(t, err)
	assert.True(t, out.IsActive)
	assert.Equal(t, domain.UnitJob, out.PriceUnit)
	assert.Equal(t, domain.DifficultyMedium, out.Difficulty)
}

func TestCreate_RejectsUnknownCategory(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateServiceRequest{
		Name:     "Crystal Healing",
		Category: "wellness",
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateNameConflicts(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Service")).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_services_name" (SQLSTATE 23505)`))

	_, err := svc.Create(context.Background(), CreateServiceRequest{
		Name:     "Drain Cleaning",
		Category: "plumbing",
	})

	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestList_RejectsUnknownCategory(t *testing.T) {
	svc := NewService(new(MockServiceRepository))

	_, err := svc.List(context.Background(), "wellness")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetByID_ReturnsDeactivated(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{
		ID: 3, Name: "Drain Cleaning", IsActive: false,
	}, nil)

	out, err := svc.GetByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestDelete_SoftDeletes(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo)

	repo.On("Deactivate", mock.Anything, int64(3)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 3))
	repo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo)

	repo.On("Deactivate", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrNotFound)
}

func TestUpdate_PatchesFields(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Service{
		ID: 3, Name: "Drain Cleaning", Category: domain.CategoryPlumbing, BasePrice: 80,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.BasePrice == 95 && s.Name == "Drain Cleaning"
	})).Return(nil)

	price := 95.0
	out, err := svc.Update(context.Background(), 3, UpdateServiceRequest{BasePrice: &price})

	assert.NoError(t, err)
	assert.Equal(t, 95.0, out.BasePrice)
}
