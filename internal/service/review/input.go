package review

import (
	"strings"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// CreateReviewInput holds the payload for posting a review.
type CreateReviewInput struct {
	Text  string
	Score int
}

// Validate checks all fields and collects all errors.
func (i CreateReviewInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if fe := domain.ValidateScore(i.Score); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateReviewInput holds the payload for a partial review update.
type UpdateReviewInput struct {
	Text  *string
	Score *int
}

// Validate checks all fields and collects all errors.
func (i UpdateReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == nil && i.Score == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Score != nil {
		if fe := domain.ValidateScore(*i.Score); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CommentInput holds the payload for posting or editing a comment.
type CommentInput struct {
	Text string
}

// Validate checks all fields and collects all errors.
func (i CommentInput) Validate() error {
	if strings.TrimSpace(i.Text) == "" {
		return domain.NewValidationError("text", "required")
	}
	return nil
}
