// Package dailylog implements daily log and routine entry operations.
package dailylog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// logRepo defines the daily log repository interface needed by the service.
type logRepo interface {
	CreateLog(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error)
	GetLogByID(ctx context.Context, userID, id uuid.UUID) (*domain.DailyLog, error)
	GetLogByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error)
	ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]domain.DailyLogWithCount, error)
	UpdateLog(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error)
	CreateEntry(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error)
	GetEntryByID(ctx context.Context, userID, id uuid.UUID) (*domain.RoutineEntry, error)
	UpdateEntry(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error)
	ListEntriesByLog(ctx context.Context, logID uuid.UUID) ([]domain.EntryWithRoutine, error)
}

// routineRepo is the slice of the routine repository the service needs to
// check ownership before attaching entries.
type routineRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Routine, error)
}

// Service implements daily log and routine entry operations.
type Service struct {
	log      *slog.Logger
	logs     logRepo
	routines routineRepo
	now      func() time.Time
}

// NewService creates a new daily log service instance.
func NewService(logger *slog.Logger, logs logRepo, routines routineRepo) *Service {
	return &Service{
		log:      logger.With("service", "dailylog"),
		logs:     logs,
		routines: routines,
		now:      time.Now,
	}
}

// today returns the current date truncated to UTC midnight.
func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
