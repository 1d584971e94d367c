// Package user implements account management: the admin-facing user CRUD and
// the self-service profile operations.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	repo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/user"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/pkg/ctxutil"
)

// userRepo defines the user persistence needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params repo.UpdateParams) (*domain.User, error)
	DeleteByUsername(ctx context.Context, username string) error
	List(ctx context.Context, search string, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context, search string) (int, error)
}

// Service provides account management operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// resolveActor loads the authenticated account behind the request.
func (s *Service) resolveActor(ctx context.Context) (*domain.User, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return u, nil
}
