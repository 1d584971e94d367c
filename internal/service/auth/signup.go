package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/adapter/mail"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// RequestSignup claims a (username, email) pair or re-confirms an existing
// one, then mails a fresh confirmation code. Repeating the call for the same
// pair is how a user requests a new code; reusing either half of the pair with
// a different other half is a conflict.
func (s *Service) RequestSignup(ctx context.Context, input SignupInput) (*SignupResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.getOrCreate(ctx, input.Username, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.RequestSignup: %w", err)
	}

	s.sendCode(ctx, user)

	s.log.InfoContext(ctx, "confirmation code requested",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return &SignupResult{User: user}, nil
}

// getOrCreate resolves the pair to an existing account or creates a new one.
func (s *Service) getOrCreate(ctx context.Context, username, email string) (*domain.User, error) {
	matches, err := s.users.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}

	if u := matchPair(matches, username, email); u != nil {
		return u, nil
	}
	if len(matches) > 0 {
		return nil, pairConflict(matches, username, email)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.users.Create(txCtx, &domain.User{
			ID:       uuid.New(),
			Username: username,
			Email:    email,
			Role:     domain.RoleUser,
		})
		return createErr
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same pair.
		if errors.Is(err, domain.ErrAlreadyExists) {
			matches, lookupErr := s.users.GetByUsernameOrEmail(ctx, username, email)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if u := matchPair(matches, username, email); u != nil {
				return u, nil
			}
			return nil, pairConflict(matches, username, email)
		}
		return nil, err
	}

	return created, nil
}

// sendCode issues a confirmation code and mails it without blocking the
// request. Delivery failures are logged, not surfaced: the user can always
// ask for another code.
func (s *Service) sendCode(ctx context.Context, user *domain.User) {
	code := s.codes.Issue(user)

	msg := mail.Message{
		To:      user.Email,
		Subject: "Your confirmation code",
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour confirmation code: %s\n\nExchange it for an access token to start using the API.\n",
			user.Username, code),
	}

	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.mail.Send(bgCtx, msg); err != nil {
			s.log.Error("send confirmation code",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// matchPair returns the account matching both halves of the pair, if any.
func matchPair(matches []domain.User, username, email string) *domain.User {
	for i := range matches {
		if matches[i].Username == username && matches[i].Email == email {
			return &matches[i]
		}
	}
	return nil
}

// pairConflict names which half of the pair belongs to another account.
func pairConflict(matches []domain.User, username, email string) error {
	for i := range matches {
		if matches[i].Username == username && matches[i].Email != email {
			return fmt.Errorf("username %q belongs to another account: %w", username, domain.ErrConflict)
		}
	}
	return fmt.Errorf("email %q belongs to another account: %w", email, domain.ErrConflict)
}
