// Package title implements management of the reviewable works catalog.
// Reads are open; creating, changing and deleting titles is admin work.
package title

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	repo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/title"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/pkg/ctxutil"
)

// titleRepo defines the title persistence needed by the service.
type titleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Title, error)
	List(ctx context.Context, f repo.Filter) ([]*domain.Title, error)
	Create(ctx context.Context, t *domain.Title) error
	Update(ctx context.Context, t *domain.Title) error
	SetGenres(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByNameYear(ctx context.Context, name string, year int, excludeID uuid.UUID) (bool, error)
}

// catalogRepo resolves category and genre slugs submitted with a title.
type catalogRepo interface {
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetGenresBySlugs(ctx context.Context, slugs []string) ([]domain.Genre, error)
}

// userRepo resolves the acting account for writes.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides title catalog operations.
type Service struct {
	log     *slog.Logger
	titles  titleRepo
	catalog catalogRepo
	users   userRepo
	tx      txManager
	minYear int
	now     func() time.Time
}

// NewService creates a new title service. minYear is the exclusive lower
// bound for a title's release year.
func NewService(
	logger *slog.Logger,
	titles titleRepo,
	catalog catalogRepo,
	users userRepo,
	tx txManager,
	minYear int,
) *Service {
	return &Service{
		log:     logger.With("service", "title"),
		titles:  titles,
		catalog: catalog,
		users:   users,
		tx:      tx,
		minYear: minYear,
		now:     time.Now,
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
