package user

import (
	"context"
	"fmt"
	"log/slog"

	repo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/user"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// Me returns the authenticated account's own record.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	return s.resolveActor(ctx)
}

// UpdateMe applies a partial update to the authenticated account. The role
// field is not accepted here, so accounts keep their role no matter what the
// request body claims.
func (s *Service) UpdateMe(ctx context.Context, input UpdateMeInput) (*domain.User, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, actor.ID, repo.UpdateParams{
		Username: trimPtr(input.Username),
		Email:    lowerTrimPtr(input.Email),
		Bio:      input.Bio,
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateMe: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", actor.ID.String()),
	)

	return updated, nil
}
