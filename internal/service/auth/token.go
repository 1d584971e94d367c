package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// ExchangeCode swaps a confirmation code for a JWT access token.
// Returns domain.ErrNotFound when the username is unknown and a validation
// error when the code does not match the account's current state.
func (s *Service) ExchangeCode(ctx context.Context, input TokenInput) (*TokenResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.ConfirmationCode = strings.TrimSpace(input.ConfirmationCode)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.ExchangeCode: %w", err)
	}

	if !s.codes.Verify(user, input.ConfirmationCode) {
		return nil, domain.NewValidationError("confirmation_code", "invalid or expired")
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.ExchangeCode generate token: %w", err)
	}

	s.log.InfoContext(ctx, "access token issued",
		slog.String("user_id", user.ID.String()),
	)

	return &TokenResult{AccessToken: token}, nil
}
