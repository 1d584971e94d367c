package title

import (
	"context"
	"sync"

	"github.com/google/uuid"

	repo "github.com/Rexant-b2k/RateReviewRevive/internal/adapter/postgres/title"
	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

var (
	_ titleRepo   = &titleRepoMock{}
	_ catalogRepo = &catalogRepoMock{}
	_ userRepo    = &userRepoMock{}
	_ txManager   = &txManagerMock{}
)

type titleRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Title, error)
	ListFunc             func(ctx context.Context, f repo.Filter) ([]*domain.Title, error)
	CreateFunc           func(ctx context.Context, t *domain.Title) error
	UpdateFunc           func(ctx context.Context, t *domain.Title) error
	SetGenresFunc        func(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	ExistsByNameYearFunc func(ctx context.Context, name string, year int, excludeID uuid.UUID) (bool, error)

	calls struct {
		Create    []struct{ Title *domain.Title }
		Update    []struct{ Title *domain.Title }
		SetGenres []struct {
			TitleID  uuid.UUID
			GenreIDs []uuid.UUID
		}
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *titleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Title, error) {
	if mock.GetByIDFunc == nil {
		panic("titleRepoMock.GetByIDFunc: method is nil but titleRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *titleRepoMock) List(ctx context.Context, f repo.Filter) ([]*domain.Title, error) {
	if mock.ListFunc == nil {
		panic("titleRepoMock.ListFunc: method is nil but titleRepo.List was just called")
	}
	return mock.ListFunc(ctx, f)
}

func (mock *titleRepoMock) Create(ctx context.Context, t *domain.Title) error {
	if mock.CreateFunc == nil {
		panic("titleRepoMock.CreateFunc: method is nil but titleRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Title *domain.Title }{t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *titleRepoMock) CreateCalls() []struct{ Title *domain.Title } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *titleRepoMock) Update(ctx context.Context, t *domain.Title) error {
	if mock.UpdateFunc == nil {
		panic("titleRepoMock.UpdateFunc: method is nil but titleRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Title *domain.Title }{t})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *titleRepoMock) UpdateCalls() []struct{ Title *domain.Title } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *titleRepoMock) SetGenres(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	if mock.SetGenresFunc == nil {
		panic("titleRepoMock.SetGenresFunc: method is nil but titleRepo.SetGenres was just called")
	}
	mock.lock.Lock()
	mock.calls.SetGenres = append(mock.calls.SetGenres, struct {
		TitleID  uuid.UUID
		GenreIDs []uuid.UUID
	}{titleID, genreIDs})
	mock.lock.Unlock()
	return mock.SetGenresFunc(ctx, titleID, genreIDs)
}

func (mock *titleRepoMock) SetGenresCalls() []struct {
	TitleID  uuid.UUID
	GenreIDs []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetGenres
}

func (mock *titleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("titleRepoMock.DeleteFunc: method is nil but titleRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *titleRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *titleRepoMock) ExistsByNameYear(ctx context.Context, name string, year int, excludeID uuid.UUID) (bool, error) {
	if mock.ExistsByNameYearFunc == nil {
		panic("titleRepoMock.ExistsByNameYearFunc: method is nil but titleRepo.ExistsByNameYear was just called")
	}
	return mock.ExistsByNameYearFunc(ctx, name, year, excludeID)
}

type catalogRepoMock struct {
	GetCategoryBySlugFunc func(ctx context.Context, slug string) (*domain.Category, error)
	GetGenresBySlugsFunc  func(ctx context.Context, slugs []string) ([]domain.Genre, error)
}

func (mock *catalogRepoMock) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if mock.GetCategoryBySlugFunc == nil {
		panic("catalogRepoMock.GetCategoryBySlugFunc: method is nil but catalogRepo.GetCategoryBySlug was just called")
	}
	return mock.GetCategoryBySlugFunc(ctx, slug)
}

func (mock *catalogRepoMock) GetGenresBySlugs(ctx context.Context, slugs []string) ([]domain.Genre, error) {
	if mock.GetGenresBySlugsFunc == nil {
		panic("catalogRepoMock.GetGenresBySlugsFunc: method is nil but catalogRepo.GetGenresBySlugs was just called")
	}
	return mock.GetGenresBySlugsFunc(ctx, slugs)
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
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
