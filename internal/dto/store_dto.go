package dto

import (
	"ratehub/internal/models"
	"ratehub/internal/repository"
)

// CreateStoreRequest is shared by the admin route (OwnerID honored) and the
// owner route (OwnerID ignored, the caller's id is used).
type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required,min=20,max=60"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required,max=400"`
	OwnerID *int64 `json:"owner_id"`
}

type StoreResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID *int64 `json:"owner_id,omitempty"`
}

func FromModelToStoreResponse(store *models.Store) *StoreResponse {
	return &StoreResponse{
		ID:      store.ID,
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
		OwnerID: store.OwnerID,
	}
}

func FromModelsToStoreResponses(stores []models.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, *FromModelToStoreResponse(&stores[i]))
	}
	return out
}

// StoreWithRatingResponse is the listing shape for ordinary users. Only the
// caller's own rating appears; other users' individual ratings never show up
// in a listing.
type StoreWithRatingResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Address             string `json:"address"`
	OverallRating       string `json:"overall_rating"`
	TotalRatingsCount   int64  `json:"total_ratings_count"`
	UserSubmittedRating *int   `json:"user_submitted_rating"`
}

func NewStoreWithRatingResponses(rows []repository.StoreWithUserRating) []StoreWithRatingResponse {
	out := make([]StoreWithRatingResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, StoreWithRatingResponse{
			ID:                  row.ID,
			Name:                row.Name,
			Address:             row.Address,
			OverallRating:       row.OverallRating.StringFixed(2),
			TotalRatingsCount:   row.TotalRatingsCount,
			UserSubmittedRating: row.UserSubmittedRating,
		})
	}
	return out
}

// AdminStoreResponse is the admin listing shape.
type AdminStoreResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	OwnerID      *int64 `json:"owner_id,omitempty"`
	AvgRating    string `json:"avg_rating"`
	RatingsCount int64  `json:"ratings_count"`
}

func NewAdminStoreResponses(rows []repository.StoreWithAverage) []AdminStoreResponse {
	out := make([]AdminStoreResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, AdminStoreResponse{
			ID:           row.ID,
			Name:         row.Name,
			Email:        row.Email,
			Address:      row.Address,
			OwnerID:      row.OwnerID,
			AvgRating:    row.AvgRating.StringFixed(2),
			RatingsCount: row.RatingsCount,
		})
	}
	return out
}
