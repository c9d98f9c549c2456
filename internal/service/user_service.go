package service

import (
	"context"
	"errors"
	"log/slog"

	"ratehub/internal/cache"
	"ratehub/internal/dto"
	"ratehub/internal/middleware/auth"
	"ratehub/internal/models"
	"ratehub/internal/repository"

	"gorm.io/gorm"
)

const dashboardStatsCacheKey = "admin:dashboard:stats"

type UserService interface {
	CreateUser(ctx context.Context, req *dto.AdminCreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context, filter repository.UserFilter, sort repository.Sort) ([]dto.UserResponse, error)
	GetUserDetails(ctx context.Context, id int64) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

type userService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	statsCache *cache.Cache
	logger     *slog.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
	statsCache *cache.Cache,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
		statsCache: statsCache,
		logger:     logger,
	}
}

// CreateUser is the admin variant of registration: any role from the closed
// set may be assigned, anything else falls back to "user".
func (s *userService) CreateUser(ctx context.Context, req *dto.AdminCreateUserRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Address:  req.Address,
		Role:     models.ParseRole(req.Role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter repository.UserFilter, sort repository.Sort) ([]dto.UserResponse, error) {
	rows, err := s.userRepo.List(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponses(rows), nil
}

func (s *userService) GetUserDetails(ctx context.Context, id int64) (*dto.UserResponse, error) {
	row, err := s.userRepo.GetWithOwnerAverage(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := dto.NewUserResponse(*row)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

// DashboardStats returns the total users/stores/ratings counters, cached for
// a short TTL when Redis is configured. A cache failure degrades to the
// database counts rather than failing the request.
func (s *userService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats
	hit, err := s.statsCache.GetJSON(ctx, dashboardStatsCacheKey, &stats)
	if err != nil {
		s.logger.Warn("dashboard stats cache read failed", "error", err)
	}
	if hit {
		return &stats, nil
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats = dto.DashboardStats{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}

	if err := s.statsCache.SetJSON(ctx, dashboardStatsCacheKey, &stats); err != nil {
		s.logger.Warn("dashboard stats cache write failed", "error", err)
	}

	return &stats, nil
}
