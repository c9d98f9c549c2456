package service

import (
	"context"
	"errors"

	"ratehub/internal/dto"
	"ratehub/internal/models"
	"ratehub/internal/repository"

	"gorm.io/gorm"
)

type StoreService interface {
	ListForUser(ctx context.Context, userID int64, filter repository.StoreFilter) ([]dto.StoreWithRatingResponse, error)
	GetStore(ctx context.Context, id int64) (*dto.StoreResponse, error)
	CreateStore(ctx context.Context, req *dto.CreateStoreRequest, ownerID *int64) (*dto.StoreResponse, error)
	ListWithAverages(ctx context.Context, filter repository.StoreFilter, sort repository.Sort) ([]dto.AdminStoreResponse, error)
	ListOwned(ctx context.Context, ownerID int64) ([]dto.StoreResponse, error)
	StoreRatings(ctx context.Context, storeID, ownerID int64) ([]dto.StoreRatingDetailResponse, error)
	OwnedStoreSummary(ctx context.Context, storeID, ownerID int64) (*dto.StoreSummaryResponse, error)
	DeleteStore(ctx context.Context, storeID int64) error
	DeleteOwnedStore(ctx context.Context, storeID, ownerID int64) error
}

type storeService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
}

func NewStoreService(storeRepo repository.StoreRepository, ratingRepo repository.RatingRepository) StoreService {
	return &storeService{
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// ListForUser returns the store listing for an ordinary user: overall average,
// vote count and the caller's own rating. Other users' individual ratings are
// never part of this shape.
func (s *storeService) ListForUser(ctx context.Context, userID int64, filter repository.StoreFilter) ([]dto.StoreWithRatingResponse, error) {
	rows, err := s.storeRepo.ListForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewStoreWithRatingResponses(rows), nil
}

func (s *storeService) GetStore(ctx context.Context, id int64) (*dto.StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return dto.FromModelToStoreResponse(store), nil
}

// CreateStore serves both the admin route (ownerID from the request body, may
// be nil) and the owner route (ownerID is the caller).
func (s *storeService) CreateStore(ctx context.Context, req *dto.CreateStoreRequest, ownerID *int64) (*dto.StoreResponse, error) {
	store := &models.Store{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return dto.FromModelToStoreResponse(store), nil
}

func (s *storeService) ListWithAverages(ctx context.Context, filter repository.StoreFilter, sort repository.Sort) ([]dto.AdminStoreResponse, error) {
	rows, err := s.storeRepo.ListWithAverages(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	return dto.NewAdminStoreResponses(rows), nil
}

func (s *storeService) ListOwned(ctx context.Context, ownerID int64) ([]dto.StoreResponse, error) {
	stores, err := s.storeRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToStoreResponses(stores), nil
}

// StoreRatings returns the full rater detail list, but only for a store the
// caller owns; anyone else gets not-found rather than a hint the store exists.
func (s *storeService) StoreRatings(ctx context.Context, storeID, ownerID int64) ([]dto.StoreRatingDetailResponse, error) {
	owned, err := s.storeRepo.OwnedBy(ctx, storeID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrStoreNotFound
	}

	rows, err := s.ratingRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return dto.NewStoreRatingDetailResponses(rows), nil
}

// OwnedStoreSummary is the owner dashboard aggregate, scoped the same way as
// the detail list.
func (s *storeService) OwnedStoreSummary(ctx context.Context, storeID, ownerID int64) (*dto.StoreSummaryResponse, error) {
	owned, err := s.storeRepo.OwnedBy(ctx, storeID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrStoreNotFound
	}

	summary, err := s.ratingRepo.StoreSummary(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return dto.NewStoreSummaryResponse(summary), nil
}

func (s *storeService) DeleteStore(ctx context.Context, storeID int64) error {
	err := s.storeRepo.DeleteWithRatings(ctx, storeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStoreNotFound
	}
	return err
}

func (s *storeService) DeleteOwnedStore(ctx context.Context, storeID, ownerID int64) error {
	err := s.storeRepo.DeleteOwnedWithRatings(ctx, storeID, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStoreNotFound
	}
	return err
}
