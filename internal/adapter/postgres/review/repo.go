// Package review implements the Review and Comment repositories using
// PostgreSQL. Reviews are always addressed through their title and comments
// through their review, so cross-title probing of ids comes back as not found.
package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// Repo provides review and comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	reviewColumns = `r.id, r.title_id, r.author_id, u.username, r.text, r.score, r.pub_date`

	getReviewSQL = `
SELECT ` + reviewColumns + `
FROM reviews r
JOIN users u ON u.id = r.author_id
WHERE r.id = $1 AND r.title_id = $2`

	listReviewsSQL = `
SELECT ` + reviewColumns + `
FROM reviews r
JOIN users u ON u.id = r.author_id
WHERE r.title_id = $1
ORDER BY r.pub_date DESC, r.id
LIMIT $2 OFFSET $3`

	countReviewsSQL = `SELECT count(*) FROM reviews WHERE title_id = $1`

	createReviewSQL = `
INSERT INTO reviews (id, title_id, author_id, text, score)
VALUES ($1, $2, $3, $4, $5)
RETURNING pub_date`

	updateReviewSQL = `
UPDATE reviews
SET text = $3, score = $4
WHERE id = $1 AND title_id = $2`

	deleteReviewSQL = `DELETE FROM reviews WHERE id = $1 AND title_id = $2`

	existsReviewSQL = `SELECT EXISTS (SELECT 1 FROM reviews WHERE title_id = $1 AND author_id = $2)`

	commentColumns = `c.id, c.review_id, c.author_id, u.username, c.text, c.pub_date`

	getCommentSQL = `
SELECT ` + commentColumns + `
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.id = $1 AND c.review_id = $2`

	listCommentsSQL = `
SELECT ` + commentColumns + `
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.review_id = $1
ORDER BY c.pub_date, c.id
LIMIT $2 OFFSET $3`

	countCommentsSQL = `SELECT count(*) FROM comments WHERE review_id = $1`

	createCommentSQL = `
INSERT INTO comments (id, review_id, author_id, text)
VALUES ($1, $2, $3, $4)
RETURNING pub_date`

	updateCommentSQL = `
UPDATE comments
SET text = $3
WHERE id = $1 AND review_id = $2`

	deleteCommentSQL = `DELETE FROM comments WHERE id = $1 AND review_id = $2`
)

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

// GetReview returns a review scoped to its title.
func (r *Repo) GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rev, err := scanReview(q.QueryRow(ctx, getReviewSQL, reviewID, titleID))
	if err != nil {
		return nil, postgres.MapError(err, "review", reviewID)
	}

	return rev, nil
}

// ListReviews returns reviews for a title, newest first. Returns an empty
// slice (not nil) when the title has no reviews.
func (r *Repo) ListReviews(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listReviewsSQL, titleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Review{}
	}

	return result, nil
}

// CountReviews returns the number of reviews a title has.
func (r *Repo) CountReviews(ctx context.Context, titleID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countReviewsSQL, titleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

// CreateReview inserts a review and fills in its publication date.
// Returns domain.ErrAlreadyExists when the author already reviewed the title
// and domain.ErrNotFound when the title or author vanished underneath.
func (r *Repo) CreateReview(ctx context.Context, rev *domain.Review) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, createReviewSQL,
		rev.ID, rev.TitleID, rev.AuthorID, rev.Text, rev.Score).Scan(&rev.PubDate)
	if err != nil {
		return postgres.MapError(err, "review", rev.TitleID)
	}

	return nil
}

// UpdateReview rewrites a review's text and score. The publication date and
// author never change.
func (r *Repo) UpdateReview(ctx context.Context, rev *domain.Review) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateReviewSQL, rev.ID, rev.TitleID, rev.Text, rev.Score)
	if err != nil {
		return postgres.MapError(err, "review", rev.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", rev.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteReview removes a review scoped to its title; comments cascade.
// Returns domain.ErrNotFound when no such review exists under the title.
func (r *Repo) DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteReviewSQL, reviewID, titleID)
	if err != nil {
		return postgres.MapError(err, "review", reviewID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", reviewID, domain.ErrNotFound)
	}

	return nil
}

// ExistsByTitleAndAuthor reports whether the author already reviewed the title.
func (r *Repo) ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsReviewSQL, titleID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("review exists by title and author: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// GetComment returns a comment scoped to its review.
func (r *Repo) GetComment(ctx context.Context, reviewID, commentID uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(q.QueryRow(ctx, getCommentSQL, commentID, reviewID))
	if err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}

	return c, nil
}

// ListComments returns comments for a review, oldest first. Returns an empty
// slice (not nil) when the review has no comments.
func (r *Repo) ListComments(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCommentsSQL, reviewID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Comment{}
	}

	return result, nil
}

// CountComments returns the number of comments a review has.
func (r *Repo) CountComments(ctx context.Context, reviewID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countCommentsSQL, reviewID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}

// CreateComment inserts a comment and fills in its publication date.
func (r *Repo) CreateComment(ctx context.Context, c *domain.Comment) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, createCommentSQL,
		c.ID, c.ReviewID, c.AuthorID, c.Text).Scan(&c.PubDate)
	if err != nil {
		return postgres.MapError(err, "comment", c.ReviewID)
	}

	return nil
}

// UpdateComment rewrites a comment's text.
func (r *Repo) UpdateComment(ctx context.Context, c *domain.Comment) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateCommentSQL, c.ID, c.ReviewID, c.Text)
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", c.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteComment removes a comment scoped to its review.
// Returns domain.ErrNotFound when no such comment exists under the review.
func (r *Repo) DeleteComment(ctx context.Context, reviewID, commentID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCommentSQL, commentID, reviewID)
	if err != nil {
		return postgres.MapError(err, "comment", commentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rev domain.Review
	err := row.Scan(&rev.ID, &rev.TitleID, &rev.AuthorID, &rev.AuthorUsername,
		&rev.Text, &rev.Score, &rev.PubDate)
	if err != nil {
		return nil, err
	}

	return &rev, nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ReviewID, &c.AuthorID, &c.AuthorUsername,
		&c.Text, &c.PubDate)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
