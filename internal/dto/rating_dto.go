package dto

import (
	"time"

	"ratehub/internal/models"
	"ratehub/internal/repository"
)

// SubmitRatingRequest for creating or updating a rating. POST and PUT bind
// the same shape and mean the same operation.
type SubmitRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RatingResponse is the resulting row after a submission.
type RatingResponse struct {
	ID      int64     `json:"id"`
	StoreID int64     `json:"store_id"`
	UserID  int64     `json:"user_id"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"rated_at"`
}

func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:      rating.ID,
		StoreID: rating.StoreID,
		UserID:  rating.UserID,
		Rating:  rating.Rating,
		RatedAt: rating.RatedAt,
	}
}

// StoreSummaryResponse carries the average as a fixed two-decimal string so
// it never renders as a floating approximation.
type StoreSummaryResponse struct {
	AvgRating string `json:"avg_rating"`
	Total     int64  `json:"total"`
}

func NewStoreSummaryResponse(summary *repository.StoreSummary) *StoreSummaryResponse {
	return &StoreSummaryResponse{
		AvgRating: summary.AvgRating.StringFixed(2),
		Total:     summary.Total,
	}
}

// StoreRatingDetailResponse is one entry of the owner's rater list.
type StoreRatingDetailResponse struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"rated_at"`
}

func NewStoreRatingDetailResponses(rows []repository.StoreRatingDetail) []StoreRatingDetailResponse {
	out := make([]StoreRatingDetailResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, StoreRatingDetailResponse{
			Name:    row.Name,
			Email:   row.Email,
			Rating:  row.Rating,
			RatedAt: row.RatedAt,
		})
	}
	return out
}
