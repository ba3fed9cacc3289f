package auth

import "github.com/daymentor/mentor-backend/internal/domain"

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
