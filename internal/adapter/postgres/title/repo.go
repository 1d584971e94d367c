// Package title implements the Title repository using PostgreSQL.
// The rating is an aggregate over review scores computed inside every read
// query; it is never stored.
package title

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// Repo provides title persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new title repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// titleSelect is the shared projection: title row, nullable category and the
// on-the-fly review average.
func titleSelect() sq.SelectBuilder {
	return psql.Select(
		"t.id", "t.name", "t.year", "t.description",
		"c.id", "c.name", "c.slug",
		"AVG(r.score)::float8 AS rating",
	).
		From("titles t").
		LeftJoin("categories c ON c.id = t.category_id").
		LeftJoin("reviews r ON r.title_id = t.id").
		GroupBy("t.id", "c.id")
}

const (
	createSQL = `
INSERT INTO titles (id, name, year, description, category_id)
VALUES ($1, $2, $3, $4, $5)`

	updateSQL = `
UPDATE titles
SET name = $2, year = $3, description = $4, category_id = $5
WHERE id = $1`

	deleteSQL = `DELETE FROM titles WHERE id = $1`

	existsByNameYearSQL = `SELECT EXISTS (SELECT 1 FROM titles WHERE name = $1 AND year = $2 AND id <> $3)`

	clearGenresSQL  = `DELETE FROM title_genres WHERE title_id = $1`
	insertGenresSQL = `
INSERT INTO title_genres (title_id, genre_id)
SELECT $1, unnest($2::uuid[])
ON CONFLICT DO NOTHING`

	genresByTitleIDsSQL = `
SELECT tg.title_id, g.id, g.name, g.slug
FROM title_genres tg
JOIN genres g ON g.id = tg.genre_id
WHERE tg.title_id = ANY($1::uuid[])
ORDER BY tg.title_id, g.name`
)

// GetByID returns a title with its category, genres and derived rating.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Title, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := titleSelect().Where(sq.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build title query: %w", err)
	}

	t, err := scanTitle(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "title", id)
	}

	if err := r.attachGenres(ctx, []*domain.Title{t}); err != nil {
		return nil, fmt.Errorf("title %s: %w", id, err)
	}

	return t, nil
}

// List returns titles matching the filter, ordered by name then year, each
// with category, genres and derived rating. Returns an empty slice (not nil)
// when nothing matches.
func (r *Repo) List(ctx context.Context, f Filter) ([]*domain.Title, error) {
	f.normalize()

	q := postgres.QuerierFromCtx(ctx, r.pool)

	qb := titleSelect().
		OrderBy("t.name", "t.year").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if f.CategorySlug != nil {
		qb = qb.Where(sq.Eq{"c.slug": *f.CategorySlug})
	}
	if f.GenreSlug != nil {
		qb = qb.Where(
			"t.id IN (SELECT tg.title_id FROM title_genres tg JOIN genres g ON g.id = tg.genre_id WHERE g.slug = ?)",
			*f.GenreSlug)
	}
	if f.Name != nil {
		qb = qb.Where("t.name ILIKE ?", "%"+*f.Name+"%")
	}
	if f.Year != nil {
		qb = qb.Where(sq.Eq{"t.year": *f.Year})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build title list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var result []*domain.Title
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		return []*domain.Title{}, nil
	}

	if err := r.attachGenres(ctx, result); err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}

	return result, nil
}

// Create inserts the title row. Genre links are written by SetGenres; the
// service runs both inside one transaction so the associations are atomic.
// Returns domain.ErrAlreadyExists on a duplicate (name, year) pair and
// domain.ErrNotFound on a vanished category.
func (r *Repo) Create(ctx context.Context, t *domain.Title) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var categoryID pgtype.UUID
	if t.Category != nil {
		categoryID = pgtype.UUID{Bytes: t.Category.ID, Valid: true}
	}

	if _, err := q.Exec(ctx, createSQL, t.ID, t.Name, t.Year, t.Description, categoryID); err != nil {
		return postgres.MapError(err, "title", t.Name)
	}

	return nil
}

// Update rewrites the title row. Same error contract as Create.
func (r *Repo) Update(ctx context.Context, t *domain.Title) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var categoryID pgtype.UUID
	if t.Category != nil {
		categoryID = pgtype.UUID{Bytes: t.Category.ID, Valid: true}
	}

	tag, err := q.Exec(ctx, updateSQL, t.ID, t.Name, t.Year, t.Description, categoryID)
	if err != nil {
		return postgres.MapError(err, "title", t.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("title %s: %w", t.ID, domain.ErrNotFound)
	}

	return nil
}

// SetGenres replaces the title's genre links with genreIDs.
func (r *Repo) SetGenres(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearGenresSQL, titleID); err != nil {
		return postgres.MapError(err, "title_genres", titleID)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	if _, err := q.Exec(ctx, insertGenresSQL, titleID, genreIDs); err != nil {
		return postgres.MapError(err, "title_genres", titleID)
	}

	return nil
}

// Delete removes a title; its reviews and their comments cascade.
// Returns domain.ErrNotFound when no such title exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "title", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("title %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ExistsByNameYear reports whether a different title already claims the
// (name, year) pair. excludeID skips the title being updated; pass uuid.Nil
// on create.
func (r *Repo) ExistsByNameYear(ctx context.Context, name string, year int, excludeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsByNameYearSQL, name, year, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("title exists by name and year: %w", err)
	}

	return exists, nil
}

// attachGenres loads genres for the given titles in one batch query.
func (r *Repo) attachGenres(ctx context.Context, titles []*domain.Title) error {
	if len(titles) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	byID := make(map[uuid.UUID]*domain.Title, len(titles))
	ids := make([]uuid.UUID, 0, len(titles))
	for _, t := range titles {
		t.Genres = []domain.Genre{}
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	rows, err := q.Query(ctx, genresByTitleIDsSQL, ids)
	if err != nil {
		return fmt.Errorf("genres by title ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			titleID uuid.UUID
			g       domain.Genre
		)
		if err := rows.Scan(&titleID, &g.ID, &g.Name, &g.Slug); err != nil {
			return err
		}
		if t, ok := byID[titleID]; ok {
			t.Genres = append(t.Genres, g)
		}
	}

	return rows.Err()
}

// scanTitle scans the titleSelect projection into a domain.Title.
func scanTitle(row pgx.Row) (*domain.Title, error) {
	var (
		t       domain.Title
		catID   pgtype.UUID
		catName pgtype.Text
		catSlug pgtype.Text
		rating  pgtype.Float8
	)

	if err := row.Scan(&t.ID, &t.Name, &t.Year, &t.Description, &catID, &catName, &catSlug, &rating); err != nil {
		return nil, err
	}

	if catID.Valid {
		t.Category = &domain.Category{
			ID:   uuid.UUID(catID.Bytes),
			Name: catName.String,
			Slug: catSlug.String,
		}
	}

	if rating.Valid {
		t.Rating = &rating.Float64
	}

	return &t, nil
}
