package dto

import (
	"errors"
	"unicode"

	"ratehub/internal/models"
)

// ErrWeakPassword mirrors the account policy: 8-16 characters with at least
// one uppercase letter and one special character.
var ErrWeakPassword = errors.New("password must be 8-16 characters, include one uppercase letter, and one special character")

// RegisterRequest for self-registration. The role is always "user"; callers
// cannot choose it here.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=20,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"required,max=400"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserSummary is the public identity slice returned with auth responses.
// The password hash never appears in any response shape.
type UserSummary struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type AuthResponse struct {
	AccessToken  string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserSummary `json:"user"`
	ExpiresIn    int         `json:"expires_in"`
}

type RefreshResponse struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// ValidatePassword enforces the password policy. Length bounds are bytes of
// the binding-validated UTF-8 string, matching the account creation rules.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 16 {
		return ErrWeakPassword
	}
	var hasUpper, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case !unicode.IsLetter(c) && !unicode.IsDigit(c):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}
