package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	repo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/user"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc        func(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameOrEmailFunc func(ctx context.Context, username, email string) ([]domain.User, error)
	CreateFunc               func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateFunc               func(ctx context.Context, id uuid.UUID, params repo.UpdateParams) (*domain.User, error)
	DeleteByUsernameFunc     func(ctx context.Context, username string) error
	ListFunc                 func(ctx context.Context, search string, limit, offset int) ([]domain.User, error)
	CountFunc                func(ctx context.Context, search string) (int, error)

	calls struct {
		Create []struct{ User *domain.User }
		Update []struct {
			ID     uuid.UUID
			Params repo.UpdateParams
		}
		DeleteByUsername []struct{ Username string }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameOrEmail(ctx context.Context, username, email string) ([]domain.User, error) {
	if mock.GetByUsernameOrEmailFunc == nil {
		panic("userRepoMock.GetByUsernameOrEmailFunc: method is nil but userRepo.GetByUsernameOrEmail was just called")
	}
	return mock.GetByUsernameOrEmailFunc(ctx, username, email)
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{u})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, params repo.UpdateParams) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params repo.UpdateParams
	}{id, params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params repo.UpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *userRepoMock) DeleteByUsername(ctx context.Context, username string) error {
	if mock.DeleteByUsernameFunc == nil {
		panic("userRepoMock.DeleteByUsernameFunc: method is nil but userRepo.DeleteByUsername was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByUsername = append(mock.calls.DeleteByUsername, struct{ Username string }{username})
	mock.lock.Unlock()
	return mock.DeleteByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) DeleteByUsernameCalls() []struct{ Username string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByUsername
}

func (mock *userRepoMock) List(ctx context.Context, search string, limit, offset int) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	return mock.ListFunc(ctx, search, limit, offset)
}

func (mock *userRepoMock) Count(ctx context.Context, search string) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	return mock.CountFunc(ctx, search)
}
