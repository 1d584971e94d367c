// Package auth implements passwordless sign-up and token exchange. An account
// is claimed with a username and email; a confirmation code is mailed out and
// later exchanged for a JWT access token.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/adapter/mail"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by the auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// codeIssuer mints and checks confirmation codes bound to an account's state.
type codeIssuer interface {
	Issue(u *domain.User) string
	Verify(u *domain.User, code string) bool
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// mailSender delivers the confirmation code email.
type mailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	codes codeIssuer
	jwt   jwtManager
	mail  mailSender
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	codes codeIssuer,
	jwt jwtManager,
	mailer mailSender,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		tx:    tx,
		codes: codes,
		jwt:   jwt,
		mail:  mailer,
	}
}

// ValidateToken checks an access token and returns the actor it encodes.
// The role inside the token is a routing hint only; services that mutate
// state re-resolve the account before trusting it.
func (s *Service) ValidateToken(_ context.Context, token string) (ctxutil.Actor, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return ctxutil.Actor{}, domain.ErrUnauthorized
	}

	return ctxutil.Actor{UserID: userID, Role: role}, nil
}
