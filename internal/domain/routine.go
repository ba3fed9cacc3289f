package domain

import (
	"time"

	"github.com/google/uuid"
)

// Routine is a named recurring activity a user intends to perform regularly.
// Routines are soft-deleted (IsActive=false) so historical entries keep a
// valid reference.
type Routine struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Description    string
	Category       string
	Frequency      string
	TargetDuration int
	ScheduledTime  *string // "HH:MM", preferred time of day
	Priority       int     // 1-10
	Difficulty     int     // 1-10
	IsActive       bool
	CreatedAt      time.Time
}

// RoutineDraft is a proposed routine before it is persisted, produced either
// by the text-generation service or by the heuristic catalog. Field ranges
// are normalized (clamped) before a draft leaves the generation path.
type RoutineDraft struct {
	Name           string
	Description    string
	Category       string
	Frequency      string
	TargetDuration int
	Priority       int
	Difficulty     int
	ScheduledTime  *string
}
