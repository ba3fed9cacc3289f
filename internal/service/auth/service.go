// Package auth implements registration, login, and profile operations.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements auth and profile operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	jwt      jwtManager
	hashCost int
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		jwt:      jwt,
		hashCost: hashCost,
	}
}

// ValidateToken validates a bearer token and returns the user ID it carries.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	return s.jwt.ValidateAccessToken(token)
}
