package dailylog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

// AddEntry attaches a routine entry to one of the user's logs. Both the log
// and the routine must belong to the user. Returns ErrConflict when the
// routine already has an entry for that log.
func (s *Service) AddEntry(ctx context.Context, logID uuid.UUID, input CreateEntryInput) (*domain.RoutineEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.logs.GetLogByID(ctx, userID, logID); err != nil {
		return nil, fmt.Errorf("dailylog.AddEntry get log: %w", err)
	}
	if _, err := s.routines.GetByID(ctx, userID, input.RoutineID); err != nil {
		return nil, fmt.Errorf("dailylog.AddEntry get routine: %w", err)
	}

	status := domain.EntryStatus(input.Status)
	if input.Status == "" {
		status = domain.EntryStatusNotDone
	}

	e := &domain.RoutineEntry{
		ID:                   uuid.New(),
		RoutineID:            input.RoutineID,
		DailyLogID:           logID,
		Status:               status,
		CompletionPercentage: orZero(input.CompletionPercentage),
		ActualDuration:       input.ActualDuration,
		DifficultyFelt:       input.DifficultyFelt,
		Notes:                input.Notes,
		CreatedAt:            s.now(),
	}

	created, err := s.logs.CreateEntry(ctx, e)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("entry for routine %s: %w", input.RoutineID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("dailylog.AddEntry: %w", err)
	}

	s.log.InfoContext(ctx, "routine entry added",
		slog.String("entry_id", created.ID.String()),
		slog.String("status", string(created.Status)))

	return created, nil
}

// UpdateEntry applies a partial update to a routine entry. Ownership is
// checked through the entry's daily log.
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*domain.RoutineEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.logs.GetEntryByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("dailylog.UpdateEntry get: %w", err)
	}

	if input.Status != nil {
		e.Status = domain.EntryStatus(*input.Status)
	}
	if input.CompletionPercentage != nil {
		e.CompletionPercentage = *input.CompletionPercentage
	}
	if input.ActualDuration != nil {
		e.ActualDuration = input.ActualDuration
	}
	if input.DifficultyFelt != nil {
		e.DifficultyFelt = input.DifficultyFelt
	}
	if input.Notes != nil {
		e.Notes = *input.Notes
	}

	updated, err := s.logs.UpdateEntry(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("dailylog.UpdateEntry: %w", err)
	}

	return updated, nil
}

func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
