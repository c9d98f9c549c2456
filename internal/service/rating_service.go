package service

import (
	"context"

	"ratehub/internal/dto"
	"ratehub/internal/models"
	"ratehub/internal/repository"

	"github.com/shopspring/decimal"
)

type RatingService interface {
	Submit(ctx context.Context, storeID, userID int64, stars int) (*dto.RatingResponse, error)
	StoreSummary(ctx context.Context, storeID int64) (*dto.StoreSummaryResponse, error)
	OwnerAverage(ctx context.Context, ownerID int64) (decimal.NullDecimal, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

// Submit performs the idempotent create-or-update write. Calling it again for
// the same (store,user) pair updates the one existing row; the pair never
// gains a second row.
func (s *ratingService) Submit(ctx context.Context, storeID, userID int64, stars int) (*dto.RatingResponse, error) {
	// Stars are checked here as well as at the binding boundary so no
	// out-of-range value can reach the write, whatever the transport did.
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidRating
	}

	rating := &models.Rating{
		StoreID: storeID,
		UserID:  userID,
		Rating:  stars,
	}

	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		// The caller is authenticated, so a dangling reference means the
		// store id does not exist.
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	return dto.FromModelToRatingResponse(rating), nil
}

// StoreSummary recomputes the aggregate on demand. An unknown or unrated
// store yields "0.00" and zero votes, not an error.
func (s *ratingService) StoreSummary(ctx context.Context, storeID int64) (*dto.StoreSummaryResponse, error) {
	summary, err := s.ratingRepo.StoreSummary(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return dto.NewStoreSummaryResponse(summary), nil
}

// OwnerAverage is NULL when the owner has no stores or no ratings across
// them; zero is never a legal rating, so null is unambiguous.
func (s *ratingService) OwnerAverage(ctx context.Context, ownerID int64) (decimal.NullDecimal, error) {
	return s.ratingRepo.OwnerAverage(ctx, ownerID)
}
