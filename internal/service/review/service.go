// Package review implements reviews and their comment threads. Reading is
// open to everyone; writing needs an account, and editing someone else's
// content needs moderator rights.
package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/pkg/ctxutil"
)

// reviewRepo defines the review and comment persistence needed by the service.
type reviewRepo interface {
	GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error)
	ListReviews(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]domain.Review, error)
	CreateReview(ctx context.Context, rev *domain.Review) error
	UpdateReview(ctx context.Context, rev *domain.Review) error
	DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error
	ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID uuid.UUID) (bool, error)

	GetComment(ctx context.Context, reviewID, commentID uuid.UUID) (*domain.Comment, error)
	ListComments(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	CreateComment(ctx context.Context, c *domain.Comment) error
	UpdateComment(ctx context.Context, c *domain.Comment) error
	DeleteComment(ctx context.Context, reviewID, commentID uuid.UUID) error
}

// titleRepo anchors review operations to an existing work.
type titleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Title, error)
}

// userRepo resolves the acting account for writes.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service provides review and comment operations.
type Service struct {
	log     *slog.Logger
	reviews reviewRepo
	titles  titleRepo
	users   userRepo
}

// NewService creates a new review service.
func NewService(logger *slog.Logger, reviews reviewRepo, titles titleRepo, users userRepo) *Service {
	return &Service{
		log:     logger.With("service", "review"),
		reviews: reviews,
		titles:  titles,
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
		return nil, domain.ErrUnauthorized
	}

	return u, nil
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// PageInput holds pagination parameters for listings.
type PageInput struct {
	Limit  int
	Offset int
}

// normalize applies defaults and clamps values.
func (p *PageInput) normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
