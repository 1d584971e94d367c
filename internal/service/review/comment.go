package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// ListComments returns a review's comments, oldest first. Open to anyone.
// Returns domain.ErrNotFound when the review does not exist under the title.
func (s *Service) ListComments(ctx context.Context, titleID, reviewID uuid.UUID, page PageInput) ([]domain.Comment, error) {
	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("review.ListComments: %w", err)
	}

	page.normalize()

	result, err := s.reviews.ListComments(ctx, reviewID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("review.ListComments: %w", err)
	}

	return result, nil
}

// GetComment returns one comment scoped to its review and title. Open to anyone.
func (s *Service) GetComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*domain.Comment, error) {
	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("review.GetComment: %w", err)
	}

	c, err := s.reviews.GetComment(ctx, reviewID, commentID)
	if err != nil {
		return nil, fmt.Errorf("review.GetComment: %w", err)
	}

	return c, nil
}

// CreateComment posts a comment under a review. Any authenticated user may
// comment, any number of times.
func (s *Service) CreateComment(ctx context.Context, titleID, reviewID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceComment}); err != nil {
		return nil, err
	}

	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("review.CreateComment: %w", err)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		ID:             uuid.New(),
		ReviewID:       reviewID,
		AuthorID:       actor.ID,
		AuthorUsername: actor.Username,
		Text:           strings.TrimSpace(input.Text),
	}

	if err := s.reviews.CreateComment(ctx, c); err != nil {
		return nil, fmt.Errorf("review.CreateComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("author_id", actor.ID.String()),
		slog.String("review_id", reviewID.String()),
	)

	return c, nil
}

// UpdateComment rewrites a comment's text. Authors edit their own; moderators
// and admins edit anyone's.
func (s *Service) UpdateComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("review.UpdateComment: %w", err)
	}

	c, err := s.reviews.GetComment(ctx, reviewID, commentID)
	if err != nil {
		return nil, fmt.Errorf("review.UpdateComment: %w", err)
	}

	if err := domain.Require(actor, domain.ActionUpdate, domain.Resource{
		Kind:     domain.ResourceComment,
		AuthorID: c.AuthorID,
	}); err != nil {
		return nil, err
	}

	c.Text = strings.TrimSpace(input.Text)

	if err := s.reviews.UpdateComment(ctx, c); err != nil {
		return nil, fmt.Errorf("review.UpdateComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("actor_id", actor.ID.String()),
		slog.String("comment_id", c.ID.String()),
	)

	return c, nil
}

// DeleteComment removes a comment. Same access rule as UpdateComment.
func (s *Service) DeleteComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return err
	}

	if _, err := s.reviews.GetReview(ctx, titleID, reviewID); err != nil {
		return fmt.Errorf("review.DeleteComment: %w", err)
	}

	c, err := s.reviews.GetComment(ctx, reviewID, commentID)
	if err != nil {
		return fmt.Errorf("review.DeleteComment: %w", err)
	}

	if err := domain.Require(actor, domain.ActionDelete, domain.Resource{
		Kind:     domain.ResourceComment,
		AuthorID: c.AuthorID,
	}); err != nil {
		return err
	}

	if err := s.reviews.DeleteComment(ctx, reviewID, commentID); err != nil {
		return fmt.Errorf("review.DeleteComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("comment_id", commentID.String()),
	)

	return nil
}
