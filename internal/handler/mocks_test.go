package handler

import (
	"context"

	"ratehub/internal/dto"
	"ratehub/internal/models"
	"ratehub/internal/repository"
	"ratehub/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockStoreService mocks the StoreService interface
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) ListForUser(ctx context.Context, userID int64, filter repository.StoreFilter) ([]dto.StoreWithRatingResponse, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StoreWithRatingResponse), args.Error(1)
}

func (m *MockStoreService) GetStore(ctx context.Context, id int64) (*dto.StoreResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreResponse), args.Error(1)
}

func (m *MockStoreService) CreateStore(ctx context.Context, req *dto.CreateStoreRequest, ownerID *int64) (*dto.StoreResponse, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreResponse), args.Error(1)
}

func (m *MockStoreService) ListWithAverages(ctx context.Context, filter repository.StoreFilter, sort repository.Sort) ([]dto.AdminStoreResponse, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AdminStoreResponse), args.Error(1)
}

func (m *MockStoreService) ListOwned(ctx context.Context, ownerID int64) ([]dto.StoreResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StoreResponse), args.Error(1)
}

func (m *MockStoreService) StoreRatings(ctx context.Context, storeID, ownerID int64) ([]dto.StoreRatingDetailResponse, error) {
	args := m.Called(ctx, storeID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StoreRatingDetailResponse), args.Error(1)
}

func (m *MockStoreService) OwnedStoreSummary(ctx context.Context, storeID, ownerID int64) (*dto.StoreSummaryResponse, error) {
	args := m.Called(ctx, storeID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreSummaryResponse), args.Error(1)
}

func (m *MockStoreService) DeleteStore(ctx context.Context, storeID int64) error {
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

func (m *MockStoreService) DeleteOwnedStore(ctx context.Context, storeID, ownerID int64) error {
	args := m.Called(ctx, storeID, ownerID)
	return args.Error(0)
}

// MockRatingService mocks the RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Submit(ctx context.Context, storeID, userID int64, stars int) (*dto.RatingResponse, error) {
	args := m.Called(ctx, storeID, userID, stars)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) StoreSummary(ctx context.Context, storeID int64) (*dto.StoreSummaryResponse, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoreSummaryResponse), args.Error(1)
}

func (m *MockRatingService) OwnerAverage(ctx context.Context, ownerID int64) (decimal.NullDecimal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req *dto.AdminCreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, filter repository.UserFilter, sort repository.Sort) ([]dto.UserResponse, error) {
	args := m.Called(ctx, filter, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserResponse), args.Error(1)
}

func (m *MockUserService) GetUserDetails(ctx context.Context, id int64) (*dto.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardStats), args.Error(1)
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, address string) (*models.User, error) {
	args := m.Called(ctx, name, email, password, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

var _ service.StoreService = (*MockStoreService)(nil)
var _ service.RatingService = (*MockRatingService)(nil)
var _ service.UserService = (*MockUserService)(nil)
var _ service.AuthService = (*MockAuthService)(nil)
