// Package catalog implements the Category and Genre repositories using
// PostgreSQL. Both entities share the same shape; the slug is the external
// lookup key.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// Repo provides category and genre persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	listCategoriesSQL = `
SELECT id, name, slug FROM categories
WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
ORDER BY name
LIMIT $2 OFFSET $3`

	getCategoryBySlugSQL    = `SELECT id, name, slug FROM categories WHERE slug = $1`
	createCategorySQL       = `INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3) RETURNING id, name, slug`
	deleteCategoryBySlugSQL = `DELETE FROM categories WHERE slug = $1`

	listGenresSQL = `
SELECT id, name, slug FROM genres
WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
ORDER BY name
LIMIT $2 OFFSET $3`

	getGenresBySlugsSQL  = `SELECT id, name, slug FROM genres WHERE slug = ANY($1) ORDER BY name`
	createGenreSQL       = `INSERT INTO genres (id, name, slug) VALUES ($1, $2, $3) RETURNING id, name, slug`
	deleteGenreBySlugSQL = `DELETE FROM genres WHERE slug = $1`
)

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories returns categories ordered by name, optionally filtered by a
// name substring. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListCategories(ctx context.Context, search string, limit, offset int) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCategoriesSQL, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Category{}
	}

	return result, nil
}

// GetCategoryBySlug returns a category by its slug.
func (r *Repo) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	if err := q.QueryRow(ctx, getCategoryBySlugSQL, slug).Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		return nil, postgres.MapError(err, "category", slug)
	}

	return &c, nil
}

// CreateCategory inserts a new category.
// Returns domain.ErrAlreadyExists when the slug is taken.
func (r *Repo) CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	err := q.QueryRow(ctx, createCategorySQL, uuid.New(), name, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		return nil, postgres.MapError(err, "category", slug)
	}

	return &c, nil
}

// DeleteCategoryBySlug removes a category; titles referencing it keep a NULL
// category. Returns domain.ErrNotFound when no such slug exists.
func (r *Repo) DeleteCategoryBySlug(ctx context.Context, slug string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCategoryBySlugSQL, slug)
	if err != nil {
		return postgres.MapError(err, "category", slug)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", slug, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Genres
// ---------------------------------------------------------------------------

// ListGenres returns genres ordered by name, optionally filtered by a name
// substring. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListGenres(ctx context.Context, search string, limit, offset int) ([]domain.Genre, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listGenresSQL, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

// GetGenresBySlugs returns the genres whose slugs appear in slugs, ordered by
// name. Missing slugs are simply absent from the result; the caller decides
// whether that is an error.
func (r *Repo) GetGenresBySlugs(ctx context.Context, slugs []string) ([]domain.Genre, error) {
	if len(slugs) == 0 {
		return []domain.Genre{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getGenresBySlugsSQL, slugs)
	if err != nil {
		return nil, fmt.Errorf("get genres by slugs: %w", err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

// CreateGenre inserts a new genre.
// Returns domain.ErrAlreadyExists when the slug is taken.
func (r *Repo) CreateGenre(ctx context.Context, name, slug string) (*domain.Genre, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Genre
	err := q.QueryRow(ctx, createGenreSQL, uuid.New(), name, slug).Scan(&g.ID, &g.Name, &g.Slug)
	if err != nil {
		return nil, postgres.MapError(err, "genre", slug)
	}

	return &g, nil
}

// DeleteGenreBySlug removes a genre and its title links.
// Returns domain.ErrNotFound when no such slug exists.
func (r *Repo) DeleteGenreBySlug(ctx context.Context, slug string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteGenreBySlugSQL, slug)
	if err != nil {
		return postgres.MapError(err, "genre", slug)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("genre %s: %w", slug, domain.ErrNotFound)
	}

	return nil
}

func scanGenres(rows pgx.Rows) ([]domain.Genre, error) {
	var result []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Slug); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Genre{}
	}

	return result, nil
}
