// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{
	"id", "username", "email", "password_hash",
	"mentor_style", "mentor_intensity",
	"first_name", "last_name", "bio", "goals",
	"created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.Email, u.PasswordHash,
			u.MentorStyle, u.MentorIntensity,
			u.FirstName, u.LastName, u.Bio, u.Goals,
			u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + selectList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return r.queryOne(ctx, sql, args)
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return r.queryOne(ctx, sql, args)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return r.queryOne(ctx, sql, args)
}

// Update persists the mutable profile fields of the given user.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("mentor_style", u.MentorStyle).
		Set("mentor_intensity", u.MentorIntensity).
		Set("first_name", u.FirstName).
		Set("last_name", u.LastName).
		Set("bio", u.Bio).
		Set("goals", u.Goals).
		Set("updated_at", u.UpdatedAt).
		Where(squirrel.Eq{"id": u.ID}).
		Suffix("RETURNING " + selectList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return r.queryOne(ctx, sql, args)
}

func (r *Repo) queryOne(ctx context.Context, sql string, args []any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.User])
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}
	return &u, nil
}

func selectList() string {
	return strings.Join(columns, ", ")
}
