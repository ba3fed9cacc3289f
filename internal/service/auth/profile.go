package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile updates the authenticated user's profile and mentor
// preferences. Nil input fields are left unchanged.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateProfile get user: %w", err)
	}

	if input.FirstName != nil {
		user.FirstName = input.FirstName
	}
	if input.LastName != nil {
		user.LastName = input.LastName
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.Goals != nil {
		user.Goals = input.Goals
	}
	if input.MentorStyle != nil {
		user.MentorStyle = domain.MentorStyle(*input.MentorStyle)
	}
	if input.MentorIntensity != nil {
		user.MentorIntensity = *input.MentorIntensity
	}
	user.UpdatedAt = time.Now()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}
