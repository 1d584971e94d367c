// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, email, bio, role, is_superuser, created_at, updated_at`

const (
	getByIDSQL       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	// Matches every account claiming either half of a (username, email) pair.
	// The auth service uses the result to decide between "same identity" and
	// "partial match of a different account".
	getByUsernameOrEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2`

	createSQL = `
INSERT INTO users (id, username, email, bio, role, is_superuser, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + userColumns

	// updated_at always moves forward so outstanding confirmation codes go
	// stale on any account change.
	updateSQL = `
UPDATE users
SET username = $2, email = $3, bio = $4, role = $5, updated_at = $6
WHERE id = $1
RETURNING ` + userColumns

	deleteByUsernameSQL = `DELETE FROM users WHERE username = $1`

	listSQL = `
SELECT ` + userColumns + `
FROM users
WHERE $1 = '' OR username ILIKE '%' || $1 || '%'
ORDER BY username
LIMIT $2 OFFSET $3`

	countSQL = `SELECT count(*) FROM users WHERE $1 = '' OR username ILIKE '%' || $1 || '%'`
)

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return u, nil
}

// GetByUsernameOrEmail returns every account bound to either the username or
// the email. Zero, one or two records; an empty slice is not an error.
func (r *Repo) GetByUsernameOrEmail(ctx context.Context, username, email string) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByUsernameOrEmailSQL, username, email)
	if err != nil {
		return nil, fmt.Errorf("get users by username or email: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Create inserts a new user and returns the persisted record.
// Returns domain.ErrAlreadyExists when the username or email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now()
	created, err := scanUser(q.QueryRow(ctx, createSQL,
		u.ID, u.Username, u.Email, ptrToPgText(u.Bio), u.Role.String(), u.IsSuperuser, now))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	return created, nil
}

// UpdateParams is the partial-update set for a user record. nil fields keep
// their current value; Role is only ever set by admin paths.
type UpdateParams struct {
	Username *string
	Email    *string
	Bio      *string
	Role     *domain.Role
}

// Update applies params to the user and returns the persisted record.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	username := current.Username
	if params.Username != nil {
		username = *params.Username
	}
	email := current.Email
	if params.Email != nil {
		email = *params.Email
	}
	bio := current.Bio
	if params.Bio != nil {
		bio = params.Bio
	}
	role := current.Role
	if params.Role != nil {
		role = *params.Role
	}

	updated, err := scanUser(q.QueryRow(ctx, updateSQL,
		id, username, email, ptrToPgText(bio), role.String(), time.Now()))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return updated, nil
}

// DeleteByUsername removes a user; reviews and comments cascade in the store.
// Returns domain.ErrNotFound when no such user exists.
func (r *Repo) DeleteByUsername(ctx context.Context, username string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByUsernameSQL, username)
	if err != nil {
		return postgres.MapError(err, "user", username)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}

	return nil
}

// List returns users ordered by username, optionally filtered by a username
// substring. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, search string, limit, offset int) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Count returns the number of users matching the username search.
func (r *Repo) Count(ctx context.Context, search string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		bio  pgtype.Text
		role string
	)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &bio, &role, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	u.Bio = pgTextToPtr(bio)
	u.Role = domain.Role(role)

	return &u, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var result []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.User{}
	}

	return result, nil
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
