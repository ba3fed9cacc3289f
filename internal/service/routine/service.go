// Package routine implements routine management and goal-driven routine
// generation.
package routine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/internal/textgen"
)

// routineRepo defines the routine repository interface needed by the service.
type routineRepo interface {
	Create(ctx context.Context, rt *domain.Routine) (*domain.Routine, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Routine, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Routine, error)
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]domain.Routine, error)
	Update(ctx context.Context, rt *domain.Routine) (*domain.Routine, error)
	Deactivate(ctx context.Context, userID, id uuid.UUID) error
}

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txRunner runs a function inside a database transaction.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements routine CRUD and generation operations.
type Service struct {
	log      *slog.Logger
	routines routineRepo
	users    userRepo
	tx       txRunner          // nil means no transaction wrapping
	gen      textgen.Generator // nil when no generation backend is configured
}

// NewService creates a new routine service instance. gen may be nil, in which
// case generation falls back to the built-in catalog.
func NewService(logger *slog.Logger, routines routineRepo, users userRepo, tx txRunner, gen textgen.Generator) *Service {
	return &Service{
		log:      logger.With("service", "routine"),
		routines: routines,
		users:    users,
		tx:       tx,
		gen:      gen,
	}
}
