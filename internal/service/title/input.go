package title

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

const maxNameLen = 256

// CreateTitleInput holds the payload for registering a new work.
type CreateTitleInput struct {
	Name         string
	Year         int
	Description  string
	CategorySlug *string
	GenreSlugs   []string
}

// Validate checks all fields and collects all errors.
func (i CreateTitleInput) Validate(minYear int, now time.Time) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	}
	if fe := domain.ValidateTitleYear(i.Year, minYear, now); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTitleInput holds the payload for a partial title update. nil fields
// keep their current value; GenreSlugs nil keeps the links, an empty slice
// clears them.
type UpdateTitleInput struct {
	ID           uuid.UUID
	Name         *string
	Year         *int
	Description  *string
	CategorySlug *string
	GenreSlugs   []string
}

// Validate checks all fields and collects all errors.
func (i UpdateTitleInput) Validate(minYear int, now time.Time) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)})
		}
	}
	if i.Year != nil {
		if fe := domain.ValidateTitleYear(*i.Year, minYear, now); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTitlesInput holds the search filters for the titles listing.
type ListTitlesInput struct {
	CategorySlug *string
	GenreSlug    *string
	Name         *string
	Year         *int
	Limit        int
	Offset       int
}
