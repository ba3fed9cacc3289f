package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/internal/domain"
	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

// List returns the user's feedback history, newest first.
func (s *Service) List(ctx context.Context) ([]domain.FeedbackWithDate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.feedback.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feedback.List: %w", err)
	}
	return items, nil
}

// GetByLog returns the feedback for one daily log and marks it read.
func (s *Service) GetByLog(ctx context.Context, logID uuid.UUID) (*domain.Feedback, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f, err := s.feedback.GetByLogID(ctx, userID, logID)
	if err != nil {
		return nil, fmt.Errorf("feedback.GetByLog: %w", err)
	}

	if !f.IsRead {
		if err := s.feedback.MarkRead(ctx, f.ID); err != nil {
			s.log.WarnContext(ctx, "mark read failed",
				slog.String("feedback_id", f.ID.String()),
				slog.String("error", err.Error()))
		} else {
			f.IsRead = true
		}
	}

	return f, nil
}
