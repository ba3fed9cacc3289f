package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is one user's record for one calendar date. A user can have at
// most one log per date.
type DailyLog struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	LogDate     time.Time // date only, UTC midnight
	Mood        *int      // 1-10
	EnergyLevel *int      // 1-10
	StressLevel *int      // 1-10
	Notes       string
	Highlights  string
	Challenges  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DailyLogWithCount is a log together with its number of routine entries,
// used by the log list endpoint.
type DailyLogWithCount struct {
	DailyLog
	EntryCount int
}

// RoutineEntry records how well one routine went on one day. A routine can
// appear at most once per daily log.
type RoutineEntry struct {
	ID                   uuid.UUID
	RoutineID            uuid.UUID
	DailyLogID           uuid.UUID
	Status               EntryStatus
	CompletionPercentage int // 0-100
	ActualDuration       *int
	DifficultyFelt       *int // 1-10
	Notes                string
	CreatedAt            time.Time
}

// EntryWithRoutine pairs an entry with the routine it was logged against.
// Analysis and prompt building never touch the persistence layer; they
// consume these assembled values.
type EntryWithRoutine struct {
	Entry   RoutineEntry
	Routine Routine
}
