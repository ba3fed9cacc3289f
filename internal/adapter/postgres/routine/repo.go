// Package routine implements the Routine repository using PostgreSQL.
package routine

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daymentor/mentor-backend/internal/adapter/postgres"
	"github.com/daymentor/mentor-backend/internal/domain"
)

const table = "routines"

var columns = []string{
	"id", "user_id", "name", "description", "category", "frequency",
	"target_duration", "scheduled_time", "priority", "difficulty",
	"is_active", "created_at",
}

// Repo provides routine persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new routine repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new routine and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rt *domain.Routine) (*domain.Routine, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rt.ID, rt.UserID, rt.Name, rt.Description, rt.Category, rt.Frequency,
			rt.TargetDuration, rt.ScheduledTime, rt.Priority, rt.Difficulty,
			rt.IsActive, rt.CreatedAt).
		Suffix("RETURNING " + selectList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}

	return r.queryOne(ctx, sql, args)
}

// GetByID returns a routine owned by the given user.
// Inactive routines are returned too; callers decide whether that matters.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Routine, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}

	return r.queryOne(ctx, sql, args)
}

// GetByName returns a user's routine matched by case-insensitive name,
// active or not. Used to deduplicate generated routines.
func (r *Repo) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Routine, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where("lower(name) = lower(?)", name).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}

	return r.queryOne(ctx, sql, args)
}

// ListByUser returns the user's routines in creation order.
// When activeOnly is true, soft-deleted routines are excluded.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]domain.Routine, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC")
	if activeOnly {
		b = b.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}

	routines, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Routine])
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}
	return routines, nil
}

// Update persists the mutable fields of a routine (ownership already checked
// via the WHERE clause).
func (r *Repo) Update(ctx context.Context, rt *domain.Routine) (*domain.Routine, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", rt.Name).
		Set("description", rt.Description).
		Set("category", rt.Category).
		Set("frequency", rt.Frequency).
		Set("target_duration", rt.TargetDuration).
		Set("scheduled_time", rt.ScheduledTime).
		Set("priority", rt.Priority).
		Set("difficulty", rt.Difficulty).
		Set("is_active", rt.IsActive).
		Where(squirrel.Eq{"id": rt.ID, "user_id": rt.UserID}).
		Suffix("RETURNING " + selectList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}

	return r.queryOne(ctx, sql, args)
}

// Deactivate soft-deletes a routine, preserving historical entries.
func (r *Repo) Deactivate(ctx context.Context, userID, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "routine")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "routine")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "routine")
	}
	return nil
}

func (r *Repo) queryOne(ctx context.Context, sql string, args []any) (*domain.Routine, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}

	rt, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.Routine])
	if err != nil {
		return nil, postgres.MapError(err, "routine")
	}
	return &rt, nil
}

func selectList() string {
	return strings.Join(columns, ", ")
}
