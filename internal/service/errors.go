package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; nothing below the service layer knows about status codes.
var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
	ErrStoreNotFound      = errors.New("store not found")
	ErrUserNotFound       = errors.New("user not found")
)
