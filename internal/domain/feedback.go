package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is the generated assessment for a daily log. Exactly one Feedback
// exists per DailyLog; the unique constraint on daily_log_id enforces this
// under concurrent generation requests.
type Feedback struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DailyLogID     uuid.UUID
	FeedbackText   string
	ComplianceRate float64 // 0-100
	TopPerformer   *string
	BiggestMiss    *string
	Suggestions    string // newline-joined list
	IsRead         bool
	CreatedAt      time.Time
}

// FeedbackWithDate pairs a feedback record with the calendar date of the log
// it was generated for, used by the feedback history endpoint.
type FeedbackWithDate struct {
	Feedback
	LogDate time.Time
}
