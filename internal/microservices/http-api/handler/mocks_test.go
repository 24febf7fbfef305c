package handler

import (
	"context"

	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/policy"
	"storerating/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Submit(ctx context.Context, p policy.Principal, req dto.SubmitRatingRequest) (*dto.RatingResponse, error) {
	args := m.Called(ctx, p, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) Update(ctx context.Context, p policy.Principal, id int64, req dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	args := m.Called(ctx, p, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) Delete(ctx context.Context, p policy.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockRatingService) Get(ctx context.Context, p policy.Principal, id int64) (*dto.RatingResponse, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) ListByStore(ctx context.Context, storeID int64, params repository.ListParams) (*dto.RatingListResponse, error) {
	args := m.Called(ctx, storeID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingListResponse), args.Error(1)
}

func (m *MockRatingService) ListByUser(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.RatingListResponse, error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingListResponse), args.Error(1)
}

func (m *MockRatingService) ListByStoreOwner(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.RatingListResponse, error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingListResponse), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (policy.Principal, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(policy.Principal), args.Error(1)
}

func (m *MockAuthService) Profile(ctx context.Context, p policy.Principal) (*dto.UserResponse, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, p policy.Principal, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, p, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, p policy.Principal, req dto.ChangePasswordRequest) error {
	return m.Called(ctx, p, req).Error(0)
}

type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) List(ctx context.Context, p policy.Principal, params repository.ListParams) (*dto.StoreListResponse, error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreListResponse), args.Error(1)
}

func (m *MockStoreService) Get(ctx context.Context, id int64) (*dto.StoreResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreResponse), args.Error(1)
}

func (m *MockStoreService) Create(ctx context.Context, p policy.Principal, req dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	args := m.Called(ctx, p, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreResponse), args.Error(1)
}

func (m *MockStoreService) Update(ctx context.Context, p policy.Principal, id int64, req dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	args := m.Called(ctx, p, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreResponse), args.Error(1)
}

func (m *MockStoreService) Delete(ctx context.Context, p policy.Principal, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockStoreService) ListByOwner(ctx context.Context, p policy.Principal, ownerID int64, params repository.ListParams) (*dto.StoreListResponse, error) {
	args := m.Called(ctx, p, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreListResponse), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, params repository.ListParams) (*dto.UserListResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserListResponse), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) ForPrincipal(ctx context.Context, p policy.Principal) (any, error) {
	args := m.Called(ctx, p)
	return args.Get(0), args.Error(1)
}

func (m *MockDashboardService) Admin(ctx context.Context) (*dto.AdminDashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).(*dto.AdminDashboard), args.Error(1)
}

func (m *MockDashboardService) Owner(ctx context.Context, ownerID int64) (*dto.OwnerDashboard, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(*dto.OwnerDashboard), args.Error(1)
}

func (m *MockDashboardService) User(ctx context.Context, userID int64) (*dto.UserDashboard, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*dto.UserDashboard), args.Error(1)
}
