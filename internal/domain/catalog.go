package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a coarse classification of titles (books, films, music).
// Identity is the slug; it is the external lookup key and immutable once a
// title references it.
type Category struct {
	ID   uuid.UUID
	Name string
	Slug string
}

// Genre is a fine-grained classification; a title carries any number of them.
type Genre struct {
	ID   uuid.UUID
	Name string
	Slug string
}

// Title is a reviewable creative work.
// Rating is derived from review scores on every read and never stored;
// nil means the title has no reviews yet, which is distinct from a zero score.
type Title struct {
	ID          uuid.UUID
	Name        string
	Year        int
	Description string
	Category    *Category
	Genres      []Genre
	Rating      *float64
}

// ValidateTitleYear checks minYear < year <= current calendar year.
// minYear is policy (earliest permissible work year), supplied by config.
func ValidateTitleYear(year, minYear int, now time.Time) *FieldError {
	if year <= minYear || year > now.Year() {
		return &FieldError{Field: "year", Message: "year is out of the permitted range"}
	}
	return nil
}
