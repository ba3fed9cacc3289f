package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// Register creates a new user with username + password authentication.
// Returns ErrAlreadyExists if the username or email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// A user may register without an email; a placeholder keeps the
	// unique email column satisfied until they set a real one.
	email := input.Email
	if email == "" {
		email = fmt.Sprintf("%s@temp.local", strings.ToLower(input.Username))
	}

	style := domain.MentorStyleBalanced
	if input.MentorStyle != "" {
		style = domain.MentorStyle(input.MentorStyle)
	}
	intensity := 5
	if input.MentorIntensity != nil {
		intensity = *input.MentorIntensity
	}

	now := time.Now()
	newUser := &domain.User{
		ID:              uuid.New(),
		Username:        input.Username,
		Email:           email,
		PasswordHash:    string(hash),
		MentorStyle:     style,
		MentorIntensity: intensity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.FirstName != "" {
		newUser.FirstName = &input.FirstName
	}
	if input.LastName != "" {
		newUser.LastName = &input.LastName
	}

	user, err := s.users.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{AccessToken: token, User: user}, nil
}
