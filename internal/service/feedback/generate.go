package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/internal/insight"
	"github.com/daymentor/mentor-backend/internal/prompt"
	"github.com/daymentor/mentor-backend/internal/textgen"
	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

// Generate produces the feedback record for a daily log. The call is
// idempotent: if feedback for the log already exists it is returned
// unchanged. The model path is tried when a generator is configured; any
// failure there silently downgrades to the rule-based synthesizer.
func (s *Service) Generate(ctx context.Context, logID uuid.UUID) (*domain.Feedback, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if existing, err := s.feedback.GetByLogID(ctx, userID, logID); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("feedback.Generate lookup: %w", err)
	}

	l, err := s.logs.GetLogByID(ctx, userID, logID)
	if err != nil {
		return nil, fmt.Errorf("feedback.Generate get log: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feedback.Generate get user: %w", err)
	}

	entries, err := s.logs.ListEntriesByLog(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("feedback.Generate list entries: %w", err)
	}

	history, err := s.analyzeHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feedback.Generate history: %w", err)
	}

	compliance := insight.ComplianceRate(entries)
	top := insight.TopPerformer(entries)
	miss := insight.BiggestMiss(entries)

	ruleInput := insight.FeedbackInput{
		UserName:       user.DisplayName(),
		ComplianceRate: compliance,
		Mood:           l.Mood,
		Energy:         l.EnergyLevel,
		Stress:         l.StressLevel,
		TopPerformer:   top,
		BiggestMiss:    miss,
		History:        history,
	}

	text := s.composeText(ctx, user, l, entries, history, ruleInput)
	suggestions := insight.BuildSuggestions(ruleInput)

	created, err := s.feedback.Create(ctx, &domain.Feedback{
		ID:             uuid.New(),
		UserID:         userID,
		DailyLogID:     l.ID,
		FeedbackText:   text,
		ComplianceRate: compliance,
		TopPerformer:   top,
		BiggestMiss:    miss,
		Suggestions:    strings.Join(suggestions, "\n"),
		IsRead:         false,
		CreatedAt:      s.now(),
	})
	if err != nil {
		// A concurrent request won the insert race; its record is the
		// canonical one.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.feedback.GetByLogID(ctx, userID, logID)
		}
		return nil, fmt.Errorf("feedback.Generate create: %w", err)
	}

	s.log.InfoContext(ctx, "feedback generated",
		slog.String("log_id", logID.String()),
		slog.Float64("compliance_rate", compliance))

	return created, nil
}

// analyzeHistory assembles the full-history snapshot for a user.
func (s *Service) analyzeHistory(ctx context.Context, userID uuid.UUID) (domain.HistoricalSnapshot, error) {
	routines, err := s.routines.ListByUser(ctx, userID, false)
	if err != nil {
		return domain.HistoricalSnapshot{}, fmt.Errorf("list routines: %w", err)
	}
	logs, err := s.logs.ListLogsRaw(ctx, userID)
	if err != nil {
		return domain.HistoricalSnapshot{}, fmt.Errorf("list logs: %w", err)
	}
	entries, err := s.logs.ListEntriesByUser(ctx, userID)
	if err != nil {
		return domain.HistoricalSnapshot{}, fmt.Errorf("list entries: %w", err)
	}
	return insight.AnalyzeHistory(routines, logs, entries), nil
}

// composeText returns the feedback narrative, preferring the model when one
// is configured. Model failures downgrade to the synthesizer, never error.
func (s *Service) composeText(ctx context.Context, user *domain.User, l *domain.DailyLog, entries []domain.EntryWithRoutine, history domain.HistoricalSnapshot, ruleInput insight.FeedbackInput) string {
	if s.gen == nil {
		return insight.ComposeFeedback(ruleInput)
	}

	res := s.gen.Generate(ctx, textgen.Request{
		System: prompt.FeedbackSystem(user.MentorStyle),
		Prompt: prompt.BuildFeedback(prompt.FeedbackPromptInput{
			UserName:        user.DisplayName(),
			MentorStyle:     user.MentorStyle,
			MentorIntensity: user.MentorIntensity,
			LogDate:         l.LogDate,
			Mood:            l.Mood,
			Energy:          l.EnergyLevel,
			Stress:          l.StressLevel,
			Notes:           l.Notes,
			Highlights:      l.Highlights,
			Challenges:      l.Challenges,
			Entries:         entries,
			History:         history,
		}),
	})
	if !res.OK() {
		s.log.WarnContext(ctx, "model feedback failed, using synthesizer",
			slog.String("reason", res.FailureReason))
		return insight.ComposeFeedback(ruleInput)
	}
	return res.Text
}
