package dailylog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

// LogDetail is a daily log together with its routine entries.
type LogDetail struct {
	Log     domain.DailyLog
	Entries []domain.EntryWithRoutine
}

// CreateLog creates the user's log for a date (today when unset).
// Returns ErrConflict when a log for that date already exists.
func (s *Service) CreateLog(ctx context.Context, input CreateLogInput) (*domain.DailyLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	logDate := s.today()
	if input.LogDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.LogDate, time.UTC)
		if err != nil {
			return nil, domain.NewValidationError("log_date", "must be YYYY-MM-DD")
		}
		logDate = parsed
	}

	l := &domain.DailyLog{
		ID:          uuid.New(),
		UserID:      userID,
		LogDate:     logDate,
		Mood:        input.Mood,
		EnergyLevel: input.EnergyLevel,
		StressLevel: input.StressLevel,
		Notes:       input.Notes,
		Highlights:  input.Highlights,
		Challenges:  input.Challenges,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	created, err := s.logs.CreateLog(ctx, l)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("log for %s: %w", logDate.Format("2006-01-02"), domain.ErrConflict)
		}
		return nil, fmt.Errorf("dailylog.CreateLog: %w", err)
	}

	s.log.InfoContext(ctx, "daily log created",
		slog.String("log_id", created.ID.String()),
		slog.String("log_date", created.LogDate.Format("2006-01-02")))

	return created, nil
}

// ListLogs returns the user's logs, newest first, with entry counts.
func (s *Service) ListLogs(ctx context.Context) ([]domain.DailyLogWithCount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	logs, err := s.logs.ListLogsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dailylog.ListLogs: %w", err)
	}
	return logs, nil
}

// GetByDate returns the log for one date together with its entries.
func (s *Service) GetByDate(ctx context.Context, date string) (*LogDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	parsed, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}

	l, err := s.logs.GetLogByDate(ctx, userID, parsed)
	if err != nil {
		return nil, fmt.Errorf("dailylog.GetByDate: %w", err)
	}

	entries, err := s.logs.ListEntriesByLog(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("dailylog.GetByDate entries: %w", err)
	}

	return &LogDetail{Log: *l, Entries: entries}, nil
}

// UpdateLog applies a partial update to one of the user's logs.
func (s *Service) UpdateLog(ctx context.Context, id uuid.UUID, input UpdateLogInput) (*domain.DailyLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.logs.GetLogByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("dailylog.UpdateLog get: %w", err)
	}

	if input.Mood != nil {
		l.Mood = input.Mood
	}
	if input.EnergyLevel != nil {
		l.EnergyLevel = input.EnergyLevel
	}
	if input.StressLevel != nil {
		l.StressLevel = input.StressLevel
	}
	if input.Notes != nil {
		l.Notes = *input.Notes
	}
	if input.Highlights != nil {
		l.Highlights = *input.Highlights
	}
	if input.Challenges != nil {
		l.Challenges = *input.Challenges
	}
	l.UpdatedAt = s.now()

	updated, err := s.logs.UpdateLog(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("dailylog.UpdateLog: %w", err)
	}

	return updated, nil
}
