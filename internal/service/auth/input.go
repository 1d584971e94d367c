package auth

import (
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// SignupInput holds the parameters for requesting a confirmation code.
type SignupInput struct {
	Username string
	Email    string
}

// Validate checks all fields and collects all errors.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	if fe := domain.ValidateUsername(i.Username); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := domain.ValidateEmail(i.Email); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TokenInput holds the parameters for exchanging a confirmation code.
type TokenInput struct {
	Username         string
	ConfirmationCode string
}

// Validate checks all fields and collects all errors.
func (i TokenInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.ConfirmationCode == "" {
		errs = append(errs, domain.FieldError{Field: "confirmation_code", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
