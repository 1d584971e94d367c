package user

import (
	"strings"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// ListUsersInput holds search and pagination parameters for the user listing.
type ListUsersInput struct {
	Search string
	Limit  int
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (i *ListUsersInput) normalize() {
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	if i.Limit > maxLimit {
		i.Limit = maxLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}

// CreateUserInput holds the payload for an admin-created account.
type CreateUserInput struct {
	Username string
	Email    string
	Bio      *string
	Role     domain.Role
}

// normalize trims and lowercases where the store expects it.
func (i *CreateUserInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	if i.Role == "" {
		i.Role = domain.RoleUser
	}
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if fe := domain.ValidateUsername(i.Username); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := domain.ValidateEmail(i.Email); fe != nil {
		errs = append(errs, *fe)
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of: user, moderator, admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds the payload for an admin partial update of an account.
// nil fields keep their current value.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Bio      *string
	Role     *domain.Role
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == nil && i.Email == nil && i.Bio == nil && i.Role == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Username != nil {
		if fe := domain.ValidateUsername(strings.TrimSpace(*i.Username)); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if i.Email != nil {
		if fe := domain.ValidateEmail(strings.ToLower(strings.TrimSpace(*i.Email))); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of: user, moderator, admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMeInput holds the payload for a self-service profile update. The role
// is deliberately absent: accounts cannot change their own role.
type UpdateMeInput struct {
	Username *string
	Email    *string
	Bio      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateMeInput) Validate() error {
	return UpdateUserInput{Username: i.Username, Email: i.Email, Bio: i.Bio}.Validate()
}
