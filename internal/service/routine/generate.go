package routine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/internal/prompt"
	"github.com/daymentor/mentor-backend/internal/textgen"
	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

// Generation sources reported to the client.
const (
	SourceModel   = "model"
	SourceCatalog = "catalog"
)

// GenerateResult is the outcome of a generation request. Summary is empty
// unless the model path produced both routines and a summary.
type GenerateResult struct {
	Routines []domain.Routine
	Summary  string
	Source   string
}

// GenerateFromGoals designs a routine set from the user's free-text goals.
// The model path is tried first when a generator is configured; any failure
// there silently downgrades to the built-in catalog, so the call always
// yields at least one routine.
func (s *Service) GenerateFromGoals(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("routine.GenerateFromGoals get user: %w", err)
	}

	promptInput := prompt.RoutineGenerationInput{
		UserName:         user.DisplayName(),
		Goals:            input.Goals,
		Challenges:       input.Challenges,
		UnavailableTimes: input.UnavailableTimes,
		DesiredRoutines:  input.DesiredRoutines,
	}

	drafts, source := s.draftRoutines(ctx, promptInput, input)

	// The whole set lands or none of it does.
	var routines []domain.Routine
	persist := func(ctx context.Context) error {
		var perr error
		routines, perr = s.persistDrafts(ctx, userID, drafts)
		return perr
	}
	if s.tx != nil {
		err = s.tx.RunInTx(ctx, persist)
	} else {
		err = persist(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("routine.GenerateFromGoals: %w", err)
	}

	result := &GenerateResult{Routines: routines, Source: source}
	if source == SourceModel {
		result.Summary = s.summarize(ctx, promptInput, drafts)
	}

	s.log.InfoContext(ctx, "routines generated",
		slog.String("user_id", userID.String()),
		slog.String("source", source),
		slog.Int("count", len(routines)))

	return result, nil
}

// draftRoutines produces drafts via the model when possible, otherwise via
// the keyword catalog.
func (s *Service) draftRoutines(ctx context.Context, promptInput prompt.RoutineGenerationInput, input GenerateInput) ([]domain.RoutineDraft, string) {
	if s.gen == nil {
		return heuristicDrafts(input), SourceCatalog
	}

	res := s.gen.Generate(ctx, textgen.Request{
		System: prompt.RoutineGenerationSystem,
		Prompt: prompt.BuildRoutineGeneration(promptInput),
	})
	if !res.OK() {
		s.log.WarnContext(ctx, "model generation failed, using catalog",
			slog.String("reason", res.FailureReason))
		return heuristicDrafts(input), SourceCatalog
	}

	drafts, err := parseDrafts(res.Text)
	if err != nil {
		s.log.WarnContext(ctx, "model response unusable, using catalog",
			slog.String("error", err.Error()))
		return heuristicDrafts(input), SourceCatalog
	}
	return drafts, SourceModel
}

// persistDrafts stores each draft, reactivating a soft-deleted routine with
// the same name instead of creating a duplicate. Active routines with a
// matching name are refreshed in place.
func (s *Service) persistDrafts(ctx context.Context, userID uuid.UUID, drafts []domain.RoutineDraft) ([]domain.Routine, error) {
	routines := make([]domain.Routine, 0, len(drafts))
	for _, d := range drafts {
		existing, err := s.routines.GetByName(ctx, userID, d.Name)
		switch {
		case err == nil:
			existing.Description = d.Description
			existing.Category = d.Category
			existing.Frequency = d.Frequency
			existing.TargetDuration = d.TargetDuration
			existing.ScheduledTime = d.ScheduledTime
			existing.Priority = d.Priority
			existing.Difficulty = d.Difficulty
			existing.IsActive = true

			updated, err := s.routines.Update(ctx, existing)
			if err != nil {
				return nil, fmt.Errorf("reactivate %q: %w", d.Name, err)
			}
			routines = append(routines, *updated)

		case errors.Is(err, domain.ErrNotFound):
			created, err := s.routines.Create(ctx, &domain.Routine{
				ID:             uuid.New(),
				UserID:         userID,
				Name:           d.Name,
				Description:    d.Description,
				Category:       d.Category,
				Frequency:      d.Frequency,
				TargetDuration: d.TargetDuration,
				ScheduledTime:  d.ScheduledTime,
				Priority:       d.Priority,
				Difficulty:     d.Difficulty,
				IsActive:       true,
				CreatedAt:      time.Now(),
			})
			if err != nil {
				return nil, fmt.Errorf("create %q: %w", d.Name, err)
			}
			routines = append(routines, *created)

		default:
			return nil, fmt.Errorf("lookup %q: %w", d.Name, err)
		}
	}
	return routines, nil
}

// summarize asks the model for a short prose summary of the generated set.
// Failures produce an empty summary, never an error.
func (s *Service) summarize(ctx context.Context, promptInput prompt.RoutineGenerationInput, drafts []domain.RoutineDraft) string {
	res := s.gen.Generate(ctx, textgen.Request{
		System: prompt.RoutineSummarySystem,
		Prompt: prompt.BuildRoutineSummary(promptInput, drafts),
	})
	if !res.OK() {
		s.log.WarnContext(ctx, "summary generation failed",
			slog.String("reason", res.FailureReason))
		return ""
	}
	return res.Text
}
