package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/adapter/mail"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

var (
	_ userRepo   = &userRepoMock{}
	_ txManager  = &txManagerMock{}
	_ codeIssuer = &codeIssuerMock{}
	_ jwtManager = &jwtManagerMock{}
	_ mailSender = &mailSenderMock{}
)

type userRepoMock struct {
	GetByUsernameFunc        func(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameOrEmailFunc func(ctx context.Context, username, email string) ([]domain.User, error)
	CreateFunc               func(ctx context.Context, user *domain.User) (*domain.User, error)

	calls struct {
		GetByUsername        []struct{ Username string }
		GetByUsernameOrEmail []struct{ Username, Email string }
		Create               []struct{ User *domain.User }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, struct{ Username string }{username})
	mock.lock.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct{ Username string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByUsername
}

func (mock *userRepoMock) GetByUsernameOrEmail(ctx context.Context, username, email string) ([]domain.User, error) {
	if mock.GetByUsernameOrEmailFunc == nil {
		panic("userRepoMock.GetByUsernameOrEmailFunc: method is nil but userRepo.GetByUsernameOrEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByUsernameOrEmail = append(mock.calls.GetByUsernameOrEmail, struct{ Username, Email string }{username, email})
	mock.lock.Unlock()
	return mock.GetByUsernameOrEmailFunc(ctx, username, email)
}

func (mock *userRepoMock) GetByUsernameOrEmailCalls() []struct{ Username, Email string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByUsernameOrEmail
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{user})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

type codeIssuerMock struct {
	IssueFunc  func(u *domain.User) string
	VerifyFunc func(u *domain.User, code string) bool

	calls struct {
		Issue  []struct{ User *domain.User }
		Verify []struct {
			User *domain.User
			Code string
		}
	}
	lock sync.RWMutex
}

func (mock *codeIssuerMock) Issue(u *domain.User) string {
	if mock.IssueFunc == nil {
		panic("codeIssuerMock.IssueFunc: method is nil but codeIssuer.Issue was just called")
	}
	mock.lock.Lock()
	mock.calls.Issue = append(mock.calls.Issue, struct{ User *domain.User }{u})
	mock.lock.Unlock()
	return mock.IssueFunc(u)
}

func (mock *codeIssuerMock) IssueCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Issue
}

func (mock *codeIssuerMock) Verify(u *domain.User, code string) bool {
	if mock.VerifyFunc == nil {
		panic("codeIssuerMock.VerifyFunc: method is nil but codeIssuer.Verify was just called")
	}
	mock.lock.Lock()
	mock.calls.Verify = append(mock.calls.Verify, struct {
		User *domain.User
		Code string
	}{u, code})
	mock.lock.Unlock()
	return mock.VerifyFunc(u, code)
}

func (mock *codeIssuerMock) VerifyCalls() []struct {
	User *domain.User
	Code string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Verify
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, role string) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Role   string
		}
		ValidateAccessToken []struct{ Token string }
	}
	lock sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, struct {
		UserID uuid.UUID
		Role   string
	}{userID, role})
	mock.lock.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Role   string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GenerateAccessToken
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, struct{ Token string }{token})
	mock.lock.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct{ Token string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ValidateAccessToken
}

type mailSenderMock struct {
	SendFunc func(ctx context.Context, msg mail.Message) error

	calls struct {
		Send []struct{ Msg mail.Message }
	}
	lock sync.RWMutex
}

func (mock *mailSenderMock) Send(ctx context.Context, msg mail.Message) error {
	if mock.SendFunc == nil {
		panic("mailSenderMock.SendFunc: method is nil but mailSender.Send was just called")
	}
	mock.lock.Lock()
	mock.calls.Send = append(mock.calls.Send, struct{ Msg mail.Message }{msg})
	mock.lock.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *mailSenderMock) SendCalls() []struct{ Msg mail.Message } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Send
}
