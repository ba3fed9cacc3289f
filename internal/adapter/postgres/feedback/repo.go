// Package feedback implements the Feedback repository using PostgreSQL.
package feedback

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

const table = "feedback"

var columns = []string{
	"id", "user_id", "daily_log_id", "feedback_text", "routine_compliance_rate",
	"top_performer", "biggest_miss", "suggestions", "is_read", "created_at",
}

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feedback repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a feedback row. The unique index on daily_log_id makes a
// second insert for the same log fail with domain.ErrAlreadyExists, which is
// how concurrent generation races are resolved.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(f.ID, f.UserID, f.DailyLogID, f.FeedbackText, f.ComplianceRate,
			f.TopPerformer, f.BiggestMiss, f.Suggestions, f.IsRead, f.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return r.queryOne(ctx, sql, args)
}

// GetByLogID returns the feedback for a daily log owned by the given user.
func (r *Repo) GetByLogID(ctx context.Context, userID, logID uuid.UUID) (*domain.Feedback, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"daily_log_id": logID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return r.queryOne(ctx, sql, args)
}

// ListByUser returns the user's feedback history newest first, each record
// annotated with its log date.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FeedbackWithDate, error) {
	cols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		cols = append(cols, "f."+c)
	}
	cols = append(cols, "l.log_date")

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(table+" f").
		Join("daily_logs l ON l.id = f.daily_log_id").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}
	defer rows.Close()

	var out []domain.FeedbackWithDate
	for rows.Next() {
		var f domain.FeedbackWithDate
		if err := rows.Scan(&f.ID, &f.UserID, &f.DailyLogID, &f.FeedbackText, &f.ComplianceRate,
			&f.TopPerformer, &f.BiggestMiss, &f.Suggestions, &f.IsRead, &f.CreatedAt, &f.LogDate); err != nil {
			return nil, postgres.MapError(err, "feedback")
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}
	return out, nil
}

// MarkRead sets is_read on a feedback record.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "feedback")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "feedback")
	}
	return nil
}

// DeleteReadOlderThan removes read feedback created before the threshold and
// returns the number of rows deleted.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"is_read": true}).
		Where(squirrel.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "feedback")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "feedback")
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) queryOne(ctx context.Context, sql string, args []any) (*domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	f, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.Feedback])
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}
	return &f, nil
}
