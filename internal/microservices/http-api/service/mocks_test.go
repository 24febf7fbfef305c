package service

import (
	"context"

	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, params repository.ListParams) ([]models.User, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, update repository.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStoreRepository mocks the StoreRepository interface
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id int64) (*models.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) FindWithStats(ctx context.Context, id int64) (*models.StoreWithStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoreWithStats), args.Error(1)
}

func (m *MockStoreRepository) List(ctx context.Context, ownerID int64, params repository.ListParams) ([]models.StoreWithStats, int64, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.StoreWithStats), args.Get(1).(int64), args.Error(2)
}

func (m *MockStoreRepository) Update(ctx context.Context, id int64, update repository.StoreUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) FindByUserAndStore(ctx context.Context, userID, storeID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByID(ctx context.Context, id int64) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindDetail(ctx context.Context, id int64) (*models.RatingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingDetail), args.Error(1)
}

func (m *MockRatingRepository) UpdateByAuthor(ctx context.Context, id, userID int64, value int, comment *string) (*models.Rating, error) {
	args := m.Called(ctx, id, userID, value, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) DeleteByAuthor(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockRatingRepository) ListByStore(ctx context.Context, storeID int64, params repository.ListParams) ([]models.RatingDetail, int64, error) {
	args := m.Called(ctx, storeID, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.RatingDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID int64, params repository.ListParams) ([]models.RatingDetail, int64, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.RatingDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingRepository) ListByStoreOwner(ctx context.Context, ownerID int64, params repository.ListParams) ([]models.RatingDetail, int64, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.RatingDetail), args.Get(1).(int64), args.Error(2)
}

// MockDashboardRepository mocks the DashboardRepository interface
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) AdminStatistics(ctx context.Context) (repository.AdminStatistics, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.AdminStatistics), args.Error(1)
}

func (m *MockDashboardRepository) OwnerStatistics(ctx context.Context, ownerID int64) (repository.OwnerStatistics, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(repository.OwnerStatistics), args.Error(1)
}

func (m *MockDashboardRepository) UserStatistics(ctx context.Context, userID int64) (repository.UserStatistics, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(repository.UserStatistics), args.Error(1)
}

func (m *MockDashboardRepository) UsersByRole(ctx context.Context) ([]repository.RoleCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.RoleCount), args.Error(1)
}

func (m *MockDashboardRepository) TopStores(ctx context.Context, limit int) ([]models.StoreWithStats, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.StoreWithStats), args.Error(1)
}

func (m *MockDashboardRepository) StoresByOwner(ctx context.Context, ownerID int64) ([]models.StoreWithStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]models.StoreWithStats), args.Error(1)
}

func (m *MockDashboardRepository) RecentStores(ctx context.Context, limit int) ([]models.StoreWithStats, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.StoreWithStats), args.Error(1)
}

func (m *MockDashboardRepository) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockDashboardRepository) RecentRatings(ctx context.Context, filter repository.RecentRatingsFilter, limit int) ([]models.RatingDetail, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]models.RatingDetail), args.Error(1)
}

// MockRecorder captures rating lifecycle events
type MockRecorder struct {
	events []string
}

func (m *MockRecorder) RecordRatingEvent(event string) {
	m.events = append(m.events, event)
}
