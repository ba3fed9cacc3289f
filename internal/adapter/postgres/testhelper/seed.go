package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daymentor/mentor-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default mentor settings.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:              uuid.New(),
		Username:        "testuser-" + suffix,
		Email:           "testuser-" + suffix + "@example.com",
		PasswordHash:    "$2a$10$fakehashforseeding000000000000000000000000000000000",
		MentorStyle:     domain.MentorStyleBalanced,
		MentorIntensity: 5,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, mentor_style, mentor_intensity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		string(user.MentorStyle), user.MentorIntensity, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRoutine creates an active routine for the user with a unique name.
// Returns a filled domain.Routine.
func SeedRoutine(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Routine {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	routine := domain.Routine{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Routine " + suffix,
		Description:    "Seeded routine " + suffix,
		Category:       "general",
		Frequency:      "daily",
		TargetDuration: 30,
		Priority:       5,
		Difficulty:     5,
		IsActive:       true,
		CreatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO routines (id, user_id, name, description, category, frequency,
		                       target_duration, scheduled_time, priority, difficulty, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		routine.ID, routine.UserID, routine.Name, routine.Description, routine.Category, routine.Frequency,
		routine.TargetDuration, routine.ScheduledTime, routine.Priority, routine.Difficulty,
		routine.IsActive, routine.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoutine insert routine: %v", err)
	}

	return routine
}

// SeedDailyLog creates a daily log for the user on the given date.
// Returns a filled domain.DailyLog.
func SeedDailyLog(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date time.Time) domain.DailyLog {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	mood := 7
	energy := 6
	stress := 4
	log := domain.DailyLog{
		ID:          uuid.New(),
		UserID:      userID,
		LogDate:     date,
		Mood:        &mood,
		EnergyLevel: &energy,
		StressLevel: &stress,
		Notes:       "Seeded log",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO daily_logs (id, user_id, log_date, mood, energy_level, stress_level,
		                         notes, highlights, challenges, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		log.ID, log.UserID, log.LogDate, log.Mood, log.EnergyLevel, log.StressLevel,
		log.Notes, log.Highlights, log.Challenges, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyLog insert daily_log: %v", err)
	}

	return log
}

// SeedEntry creates a completed routine entry linking the routine to the log.
// Returns a filled domain.RoutineEntry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, routineID, dailyLogID uuid.UUID) domain.RoutineEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	duration := 25
	felt := 5
	entry := domain.RoutineEntry{
		ID:                   uuid.New(),
		RoutineID:            routineID,
		DailyLogID:           dailyLogID,
		Status:               domain.EntryStatusCompleted,
		CompletionPercentage: 100,
		ActualDuration:       &duration,
		DifficultyFelt:       &felt,
		Notes:                "Seeded entry",
		CreatedAt:            now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO routine_entries (id, routine_id, daily_log_id, status, completion_percentage,
		                              actual_duration, difficulty_felt, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.RoutineID, entry.DailyLogID, string(entry.Status), entry.CompletionPercentage,
		entry.ActualDuration, entry.DifficultyFelt, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert routine_entry: %v", err)
	}

	return entry
}
