package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	repo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/user"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// ListUsersResult carries one page of accounts plus the total match count.
type ListUsersResult struct {
	Users []domain.User
	Total int
}

// ListUsers returns accounts matching the username search. Admin only.
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionRead, domain.Resource{Kind: domain.ResourceUser}); err != nil {
		return nil, err
	}

	input.normalize()

	users, err := s.users.List(ctx, input.Search, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	total, err := s.users.Count(ctx, input.Search)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}

	return &ListUsersResult{Users: users, Total: total}, nil
}

// GetUser returns one account by username. Admin only.
func (s *Service) GetUser(ctx context.Context, username string) (*domain.User, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}

	subject, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		// Hide account existence from non-admins: permission first.
		if permErr := domain.Require(actor, domain.ActionRead, domain.Resource{Kind: domain.ResourceUser}); permErr != nil {
			return nil, permErr
		}
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}

	if err := domain.Require(actor, domain.ActionRead, domain.Resource{
		Kind:     domain.ResourceUser,
		AuthorID: subject.ID,
	}); err != nil {
		return nil, err
	}

	return subject, nil
}

// CreateUser registers an account on someone's behalf, role included. Admin
// only. No confirmation mail is sent; the new user requests a code on first
// sign-in.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceUser}); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		ID:       uuid.New(),
		Username: input.Username,
		Email:    input.Email,
		Bio:      input.Bio,
		Role:     input.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created by admin",
		slog.String("actor_id", actor.ID.String()),
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
	)

	return created, nil
}

// UpdateUser applies a partial update to an account, role included. Admin only.
func (s *Service) UpdateUser(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error) {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Require(actor, domain.ActionUpdate, domain.Resource{Kind: domain.ResourceUser}); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	subject, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	updated, err := s.users.Update(ctx, subject.ID, repo.UpdateParams{
		Username: trimPtr(input.Username),
		Email:    lowerTrimPtr(input.Email),
		Bio:      input.Bio,
		Role:     input.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user updated by admin",
		slog.String("actor_id", actor.ID.String()),
		slog.String("user_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteUser removes an account by username; its reviews and comments go with
// it. Admin only.
func (s *Service) DeleteUser(ctx context.Context, username string) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return err
	}
	if err := domain.Require(actor, domain.ActionDelete, domain.Resource{Kind: domain.ResourceUser}); err != nil {
		return err
	}

	if err := s.users.DeleteByUsername(ctx, username); err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted by admin",
		slog.String("actor_id", actor.ID.String()),
		slog.String("username", username),
	)

	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func lowerTrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*s))
	return &normalized
}
