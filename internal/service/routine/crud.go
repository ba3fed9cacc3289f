package routine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

const (
	defaultCategory  = "general"
	defaultFrequency = "daily"
	defaultDuration  = 30
	defaultPriority  = 5
)

// Create persists a new routine for the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Routine, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rt := &domain.Routine{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           input.Name,
		Description:    input.Description,
		Category:       orString(input.Category, defaultCategory),
		Frequency:      orString(input.Frequency, defaultFrequency),
		TargetDuration: orInt(input.TargetDuration, defaultDuration),
		ScheduledTime:  input.ScheduledTime,
		Priority:       orInt(input.Priority, defaultPriority),
		Difficulty:     orInt(input.Difficulty, defaultPriority),
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	created, err := s.routines.Create(ctx, rt)
	if err != nil {
		return nil, fmt.Errorf("routine.Create: %w", err)
	}

	s.log.InfoContext(ctx, "routine created",
		slog.String("routine_id", created.ID.String()),
		slog.String("name", created.Name))

	return created, nil
}

// Get returns one of the user's routines by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Routine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rt, err := s.routines.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("routine.Get: %w", err)
	}
	return rt, nil
}

// List returns the user's active routines in creation order.
func (s *Service) List(ctx context.Context) ([]domain.Routine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	routines, err := s.routines.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("routine.List: %w", err)
	}
	return routines, nil
}

// Update applies a partial update to one of the user's routines.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Routine, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rt, err := s.routines.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("routine.Update get: %w", err)
	}

	if input.Name != nil {
		rt.Name = *input.Name
	}
	if input.Description != nil {
		rt.Description = *input.Description
	}
	if input.Category != nil {
		rt.Category = *input.Category
	}
	if input.Frequency != nil {
		rt.Frequency = *input.Frequency
	}
	if input.TargetDuration != nil {
		rt.TargetDuration = *input.TargetDuration
	}
	if input.ScheduledTime != nil {
		rt.ScheduledTime = input.ScheduledTime
	}
	if input.Priority != nil {
		rt.Priority = *input.Priority
	}
	if input.Difficulty != nil {
		rt.Difficulty = *input.Difficulty
	}
	if input.IsActive != nil {
		rt.IsActive = *input.IsActive
	}

	updated, err := s.routines.Update(ctx, rt)
	if err != nil {
		return nil, fmt.Errorf("routine.Update: %w", err)
	}

	return updated, nil
}

// Delete soft-deletes a routine so historical entries stay attributable.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.routines.Deactivate(ctx, userID, id); err != nil {
		return fmt.Errorf("routine.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "routine deactivated",
		slog.String("routine_id", id.String()))

	return nil
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
