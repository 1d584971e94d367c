package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// ListReviews returns a title's reviews, newest first. Open to anyone.
// Returns domain.ErrNotFound when the title does not exist.
func (s *Service) ListReviews(ctx context.Context, titleID uuid.UUID, page PageInput) ([]domain.Review, error) {
	if _, err := s.titles.GetByID(ctx, titleID); err != nil {
		return nil, fmt.Errorf("review.ListReviews: %w", err)
	}

	page.normalize()

	result, err := s.reviews.ListReviews(ctx, titleID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("review.ListReviews: %w", err)
	}

	return result, nil
}

// GetReview returns one review scoped to its title. Open to anyone.
func (s *Service) GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error) {
	rev, err := s.reviews.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("review.GetReview: %w", err)
	}

	return rev, nil
}

// CreateReview posts a review on a title. One review per author per title;
// a second attempt is rejected with domain.ErrAlreadyExists.
func (s *Service) CreateReview(ctx context.Context, titleID uuid.UUID, input CreateReviewInput) (*domain.Review, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceReview}); err != nil {
		return nil, err
	}

	if _, err := s.titles.GetByID(ctx, titleID); err != nil {
		return nil, fmt.Errorf("review.CreateReview: %w", err)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	reviewed, err := s.reviews.ExistsByTitleAndAuthor(ctx, titleID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("review.CreateReview: %w", err)
	}
	if reviewed {
		return nil, fmt.Errorf("review by %s on title %s: %w", actor.Username, titleID, domain.ErrAlreadyExists)
	}

	rev := &domain.Review{
		ID:             uuid.New(),
		TitleID:        titleID,
		AuthorID:       actor.ID,
		AuthorUsername: actor.Username,
		Text:           strings.TrimSpace(input.Text),
		Score:          input.Score,
	}

	// The unique (title, author) constraint still backstops a create race.
	if err := s.reviews.CreateReview(ctx, rev); err != nil {
		return nil, fmt.Errorf("review.CreateReview: %w", err)
	}

	s.log.InfoContext(ctx, "review created",
		slog.String("author_id", actor.ID.String()),
		slog.String("title_id", titleID.String()),
		slog.Int("score", rev.Score),
	)

	return rev, nil
}

// UpdateReview applies a partial update to a review. Authors edit their own;
// moderators and admins edit anyone's. The authorship check runs against the
// persisted review, never the request.
func (s *Service) UpdateReview(ctx context.Context, titleID, reviewID uuid.UUID, input UpdateReviewInput) (*domain.Review, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rev, err := s.reviews.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("review.UpdateReview: %w", err)
	}

	if err := domain.Require(actor, domain.ActionUpdate, domain.Resource{
		Kind:     domain.ResourceReview,
		AuthorID: rev.AuthorID,
	}); err != nil {
		return nil, err
	}

	if input.Text != nil {
		rev.Text = strings.TrimSpace(*input.Text)
	}
	if input.Score != nil {
		rev.Score = *input.Score
	}

	if err := s.reviews.UpdateReview(ctx, rev); err != nil {
		return nil, fmt.Errorf("review.UpdateReview: %w", err)
	}

	s.log.InfoContext(ctx, "review updated",
		slog.String("actor_id", actor.ID.String()),
		slog.String("review_id", rev.ID.String()),
	)

	return rev, nil
}

// DeleteReview removes a review and its comment thread. Same access rule as
// UpdateReview.
func (s *Service) DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return err
	}

	rev, err := s.reviews.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return fmt.Errorf("review.DeleteReview: %w", err)
	}

	if err := domain.Require(actor, domain.ActionDelete, domain.Resource{
		Kind:     domain.ResourceReview,
		AuthorID: rev.AuthorID,
	}); err != nil {
		return err
	}

	if err := s.reviews.DeleteReview(ctx, titleID, reviewID); err != nil {
		return fmt.Errorf("review.DeleteReview: %w", err)
	}

	s.log.InfoContext(ctx, "review deleted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("review_id", reviewID.String()),
	)

	return nil
}
