// Package feedback orchestrates mentor feedback generation: it gathers the
// day's entries and the user's history, tries the model path, falls back to
// the rule-based synthesizer, and persists exactly one feedback per log.
package feedback

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/internal/textgen"
)

// feedbackRepo defines the feedback repository interface needed by the
// service.
type feedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	GetByLogID(ctx context.Context, userID, logID uuid.UUID) (*domain.Feedback, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FeedbackWithDate, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// logRepo is the slice of the daily log repository used to assemble the
// analysis inputs.
type logRepo interface {
	GetLogByID(ctx context.Context, userID, id uuid.UUID) (*domain.DailyLog, error)
	ListLogsRaw(ctx context.Context, userID uuid.UUID) ([]domain.DailyLog, error)
	ListEntriesByLog(ctx context.Context, logID uuid.UUID) ([]domain.EntryWithRoutine, error)
	ListEntriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.RoutineEntry, error)
}

// routineRepo is the slice of the routine repository used for historical
// analysis.
type routineRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]domain.Routine, error)
}

// userRepo is the slice of the user repository used for prompt personalization.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements feedback generation and retrieval.
type Service struct {
	log      *slog.Logger
	feedback feedbackRepo
	logs     logRepo
	routines routineRepo
	users    userRepo
	gen      textgen.Generator // nil when no generation backend is configured
	now      func() time.Time
}

// NewService creates a new feedback service instance. gen may be nil, in
// which case every generation uses the rule-based synthesizer.
func NewService(logger *slog.Logger, feedback feedbackRepo, logs logRepo, routines routineRepo, users userRepo, gen textgen.Generator) *Service {
	return &Service{
		log:      logger.With("service", "feedback"),
		feedback: feedback,
		logs:     logs,
		routines: routines,
		users:    users,
		gen:      gen,
		now:      time.Now,
	}
}
