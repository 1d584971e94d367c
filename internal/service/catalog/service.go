// Package catalog implements category and genre management. Reads are open to
// everyone; writes are reserved for admins.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/pkg/ctxutil"
)

// catalogRepo defines the category and genre persistence needed by the service.
type catalogRepo interface {
	ListCategories(ctx context.Context, search string, limit, offset int) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error)
	DeleteCategoryBySlug(ctx context.Context, slug string) error

	ListGenres(ctx context.Context, search string, limit, offset int) ([]domain.Genre, error)
	CreateGenre(ctx context.Context, name, slug string) (*domain.Genre, error)
	DeleteGenreBySlug(ctx context.Context, slug string) error
}

// userRepo resolves the acting account; the role in the token is not trusted
// for writes.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service provides catalog management operations.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
	users   userRepo
}

// NewService creates a new catalog service.
func NewService(logger *slog.Logger, catalog catalogRepo, users userRepo) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		catalog: catalog,
		users:   users,
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
		// The token outlived the account.
		return nil, domain.ErrUnauthorized
	}

	return u, nil
}

const (
	maxNameLen = 256
	maxSlugLen = 50
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// validateNameSlug collects field errors for a catalog entity payload.
func validateNameSlug(name, slug string) error {
	var errs []domain.FieldError

	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	}
	if slug == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	} else {
		if len(slug) > maxSlugLen {
			errs = append(errs, domain.FieldError{Field: "slug", Message: fmt.Sprintf("max %d characters", maxSlugLen)})
		}
		if !slugRe.MatchString(slug) {
			errs = append(errs, domain.FieldError{Field: "slug", Message: "only letters, digits, hyphens and underscores"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
