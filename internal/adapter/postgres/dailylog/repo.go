// Package dailylog implements the DailyLog and RoutineEntry repositories
// using PostgreSQL.
package dailylog

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daymentor/mentor-backend/internal/adapter/postgres"
	"github.com/daymentor/mentor-backend/internal/domain"
)

const (
	logTable   = "daily_logs"
	entryTable = "routine_entries"
)

var logColumns = []string{
	"id", "user_id", "log_date", "mood", "energy_level", "stress_level",
	"notes", "highlights", "challenges", "created_at", "updated_at",
}

var entryColumns = []string{
	"id", "routine_id", "daily_log_id", "status", "completion_percentage",
	"actual_duration", "difficulty_felt", "notes", "created_at",
}

// Repo provides daily log and routine entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// DailyLog operations
// ---------------------------------------------------------------------------

// CreateLog inserts a new daily log. The unique (user_id, log_date) index
// rejects a second log for the same date with domain.ErrAlreadyExists.
func (r *Repo) CreateLog(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error) {
	sql, args, err := postgres.Builder().
		Insert(logTable).
		Columns(logColumns...).
		Values(l.ID, l.UserID, l.LogDate, l.Mood, l.EnergyLevel, l.StressLevel,
			l.Notes, l.Highlights, l.Challenges, l.CreatedAt, l.UpdatedAt).
		Suffix("RETURNING " + strings.Join(logColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	return r.queryOneLog(ctx, sql, args)
}

// GetLogByID returns a daily log owned by the given user.
func (r *Repo) GetLogByID(ctx context.Context, userID, id uuid.UUID) (*domain.DailyLog, error) {
	sql, args, err := postgres.Builder().
		Select(logColumns...).
		From(logTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	return r.queryOneLog(ctx, sql, args)
}

// GetLogByDate returns the user's log for a specific calendar date.
func (r *Repo) GetLogByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error) {
	sql, args, err := postgres.Builder().
		Select(logColumns...).
		From(logTable).
		Where(squirrel.Eq{"user_id": userID, "log_date": date}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	return r.queryOneLog(ctx, sql, args)
}

// ListLogsByUser returns all of the user's logs, newest first, each with the
// count of routine entries attached.
func (r *Repo) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]domain.DailyLogWithCount, error) {
	cols := make([]string, 0, len(logColumns)+1)
	for _, c := range logColumns {
		cols = append(cols, "l."+c)
	}
	cols = append(cols, "count(e.id)")

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(logTable+" l").
		LeftJoin(entryTable+" e ON e.daily_log_id = l.id").
		Where(squirrel.Eq{"l.user_id": userID}).
		GroupBy("l.id").
		OrderBy("l.log_date DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}
	defer rows.Close()

	var out []domain.DailyLogWithCount
	for rows.Next() {
		var l domain.DailyLogWithCount
		if err := rows.Scan(&l.ID, &l.UserID, &l.LogDate, &l.Mood, &l.EnergyLevel, &l.StressLevel,
			&l.Notes, &l.Highlights, &l.Challenges, &l.CreatedAt, &l.UpdatedAt, &l.EntryCount); err != nil {
			return nil, postgres.MapError(err, "daily_log")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}
	return out, nil
}

// ListLogsRaw returns all of the user's logs without entry counts, used by
// the historical analyzer.
func (r *Repo) ListLogsRaw(ctx context.Context, userID uuid.UUID) ([]domain.DailyLog, error) {
	sql, args, err := postgres.Builder().
		Select(logColumns...).
		From(logTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("log_date ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.DailyLog])
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}
	return logs, nil
}

// UpdateLog persists the mutable fields of a daily log.
func (r *Repo) UpdateLog(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error) {
	sql, args, err := postgres.Builder().
		Update(logTable).
		Set("mood", l.Mood).
		Set("energy_level", l.EnergyLevel).
		Set("stress_level", l.StressLevel).
		Set("notes", l.Notes).
		Set("highlights", l.Highlights).
		Set("challenges", l.Challenges).
		Set("updated_at", l.UpdatedAt).
		Where(squirrel.Eq{"id": l.ID, "user_id": l.UserID}).
		Suffix("RETURNING " + strings.Join(logColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	return r.queryOneLog(ctx, sql, args)
}

// ---------------------------------------------------------------------------
// RoutineEntry operations
// ---------------------------------------------------------------------------

// CreateEntry inserts a routine entry. The unique (routine_id, daily_log_id)
// index rejects duplicates with domain.ErrAlreadyExists.
func (r *Repo) CreateEntry(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error) {
	sql, args, err := postgres.Builder().
		Insert(entryTable).
		Columns(entryColumns...).
		Values(e.ID, e.RoutineID, e.DailyLogID, e.Status, e.CompletionPercentage,
			e.ActualDuration, e.DifficultyFelt, e.Notes, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}

	return r.queryOneEntry(ctx, sql, args)
}

// GetEntryByID returns an entry whose daily log is owned by the given user.
func (r *Repo) GetEntryByID(ctx context.Context, userID, id uuid.UUID) (*domain.RoutineEntry, error) {
	cols := make([]string, 0, len(entryColumns))
	for _, c := range entryColumns {
		cols = append(cols, "e."+c)
	}

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(entryTable+" e").
		Join(logTable+" l ON l.id = e.daily_log_id").
		Where(squirrel.Eq{"e.id": id, "l.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}

	return r.queryOneEntry(ctx, sql, args)
}

// UpdateEntry persists the mutable fields of a routine entry.
func (r *Repo) UpdateEntry(ctx context.Context, e *domain.RoutineEntry) (*domain.RoutineEntry, error) {
	sql, args, err := postgres.Builder().
		Update(entryTable).
		Set("status", e.Status).
		Set("completion_percentage", e.CompletionPercentage).
		Set("actual_duration", e.ActualDuration).
		Set("difficulty_felt", e.DifficultyFelt).
		Set("notes", e.Notes).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}

	return r.queryOneEntry(ctx, sql, args)
}

// ListEntriesByLog returns a log's entries joined with their routines, in
// entry creation order.
func (r *Repo) ListEntriesByLog(ctx context.Context, logID uuid.UUID) ([]domain.EntryWithRoutine, error) {
	cols := make([]string, 0, len(entryColumns)+12)
	for _, c := range entryColumns {
		cols = append(cols, "e."+c)
	}
	for _, c := range []string{
		"id", "user_id", "name", "description", "category", "frequency",
		"target_duration", "scheduled_time", "priority", "difficulty",
		"is_active", "created_at",
	} {
		cols = append(cols, "r."+c)
	}

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(entryTable+" e").
		Join("routines r ON r.id = e.routine_id").
		Where(squirrel.Eq{"e.daily_log_id": logID}).
		OrderBy("e.created_at ASC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}
	defer rows.Close()

	var out []domain.EntryWithRoutine
	for rows.Next() {
		var ewr domain.EntryWithRoutine
		e := &ewr.Entry
		rt := &ewr.Routine
		if err := rows.Scan(
			&e.ID, &e.RoutineID, &e.DailyLogID, &e.Status, &e.CompletionPercentage,
			&e.ActualDuration, &e.DifficultyFelt, &e.Notes, &e.CreatedAt,
			&rt.ID, &rt.UserID, &rt.Name, &rt.Description, &rt.Category, &rt.Frequency,
			&rt.TargetDuration, &rt.ScheduledTime, &rt.Priority, &rt.Difficulty,
			&rt.IsActive, &rt.CreatedAt,
		); err != nil {
			return nil, postgres.MapError(err, "routine_entry")
		}
		out = append(out, ewr)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}
	return out, nil
}

// ListEntriesByUser returns every routine entry the user ever recorded,
// used by the historical analyzer.
func (r *Repo) ListEntriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.RoutineEntry, error) {
	cols := make([]string, 0, len(entryColumns))
	for _, c := range entryColumns {
		cols = append(cols, "e."+c)
	}

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(entryTable+" e").
		Join(logTable+" l ON l.id = e.daily_log_id").
		Where(squirrel.Eq{"l.user_id": userID}).
		OrderBy("e.created_at ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.RoutineEntry])
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}
	return entries, nil
}

func (r *Repo) queryOneLog(ctx context.Context, sql string, args []any) (*domain.DailyLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}

	l, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.DailyLog])
	if err != nil {
		return nil, postgres.MapError(err, "daily_log")
	}
	return &l, nil
}

func (r *Repo) queryOneEntry(ctx context.Context, sql string, args []any) (*domain.RoutineEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}

	e, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.RoutineEntry])
	if err != nil {
		return nil, postgres.MapError(err, "routine_entry")
	}
	return &e, nil
}
