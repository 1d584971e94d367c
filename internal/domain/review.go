package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review score bounds, inclusive.
const (
	MinScore = 1
	MaxScore = 10
)

// Review is a user's single review of a title. The (TitleID, AuthorID) pair
// is unique; PubDate is set by the server on create and immutable after.
type Review struct {
	ID             uuid.UUID
	TitleID        uuid.UUID
	AuthorID       uuid.UUID
	AuthorUsername string
	Text           string
	Score          int
	PubDate        time.Time
}

// Comment is a remark on a review. Any number per author per review.
type Comment struct {
	ID             uuid.UUID
	ReviewID       uuid.UUID
	AuthorID       uuid.UUID
	AuthorUsername string
	Text           string
	PubDate        time.Time
}

// ValidateScore checks the review score range.
func ValidateScore(score int) *FieldError {
	if score < MinScore || score > MaxScore {
		return &FieldError{Field: "score", Message: "must be between 1 and 10"}
	}
	return nil
}
