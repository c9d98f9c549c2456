package dto

import (
	"ratehub/internal/models"
	"ratehub/internal/repository"
)

// AdminCreateUserRequest allows the admin to pick any role; an unknown role
// string falls back to "user" rather than erroring.
type AdminCreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=20,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"required,max=400"`
	Role     string `json:"role"`
}

// UserResponse is the projected user record. OwnerAvgRating is attached only
// when the subject's role is owner; for every other role the field is absent,
// whoever is asking.
type UserResponse struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Address        string      `json:"address"`
	Role           models.Role `json:"role"`
	OwnerAvgRating *string     `json:"owner_avg_rating,omitempty"`
}

// NewUserResponse applies the visibility projection for one listing row. The
// switch over the closed role set is exhaustive on purpose: a new role must
// decide its projection here.
func NewUserResponse(row repository.UserWithOwnerAverage) UserResponse {
	resp := UserResponse{
		ID:      row.ID,
		Name:    row.Name,
		Email:   row.Email,
		Address: row.Address,
		Role:    row.Role,
	}
	switch row.Role {
	case models.RoleOwner:
		if row.OwnerAvgRating.Valid {
			avg := row.OwnerAvgRating.Decimal.StringFixed(2)
			resp.OwnerAvgRating = &avg
		}
	case models.RoleAdmin, models.RoleUser:
		// no derived aggregate for these roles
	}
	return resp
}

func NewUserResponses(rows []repository.UserWithOwnerAverage) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewUserResponse(row))
	}
	return out
}

// DashboardStats are the admin landing counters.
type DashboardStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}
