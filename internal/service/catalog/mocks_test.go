package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

var (
	_ catalogRepo = &catalogRepoMock{}
	_ userRepo    = &userRepoMock{}
)

type catalogRepoMock struct {
	ListCategoriesFunc       func(ctx context.Context, search string, limit, offset int) ([]domain.Category, error)
	GetCategoryBySlugFunc    func(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategoryFunc       func(ctx context.Context, name, slug string) (*domain.Category, error)
	DeleteCategoryBySlugFunc func(ctx context.Context, slug string) error

	ListGenresFunc        func(ctx context.Context, search string, limit, offset int) ([]domain.Genre, error)
	CreateGenreFunc       func(ctx context.Context, name, slug string) (*domain.Genre, error)
	DeleteGenreBySlugFunc func(ctx context.Context, slug string) error

	calls struct {
		CreateCategory       []struct{ Name, Slug string }
		DeleteCategoryBySlug []struct{ Slug string }
		CreateGenre          []struct{ Name, Slug string }
		DeleteGenreBySlug    []struct{ Slug string }
	}
	lock sync.RWMutex
}

func (mock *catalogRepoMock) ListCategories(ctx context.Context, search string, limit, offset int) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("catalogRepoMock.ListCategoriesFunc: method is nil but catalogRepo.ListCategories was just called")
	}
	return mock.ListCategoriesFunc(ctx, search, limit, offset)
}

func (mock *catalogRepoMock) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if mock.GetCategoryBySlugFunc == nil {
		panic("catalogRepoMock.GetCategoryBySlugFunc: method is nil but catalogRepo.GetCategoryBySlug was just called")
	}
	return mock.GetCategoryBySlugFunc(ctx, slug)
}

func (mock *catalogRepoMock) CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("catalogRepoMock.CreateCategoryFunc: method is nil but catalogRepo.CreateCategory was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, struct{ Name, Slug string }{name, slug})
	mock.lock.Unlock()
	return mock.CreateCategoryFunc(ctx, name, slug)
}

func (mock *catalogRepoMock) CreateCategoryCalls() []struct{ Name, Slug string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateCategory
}

func (mock *catalogRepoMock) DeleteCategoryBySlug(ctx context.Context, slug string) error {
	if mock.DeleteCategoryBySlugFunc == nil {
		panic("catalogRepoMock.DeleteCategoryBySlugFunc: method is nil but catalogRepo.DeleteCategoryBySlug was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteCategoryBySlug = append(mock.calls.DeleteCategoryBySlug, struct{ Slug string }{slug})
	mock.lock.Unlock()
	return mock.DeleteCategoryBySlugFunc(ctx, slug)
}

func (mock *catalogRepoMock) DeleteCategoryBySlugCalls() []struct{ Slug string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteCategoryBySlug
}

func (mock *catalogRepoMock) ListGenres(ctx context.Context, search string, limit, offset int) ([]domain.Genre, error) {
	if mock.ListGenresFunc == nil {
		panic("catalogRepoMock.ListGenresFunc: method is nil but catalogRepo.ListGenres was just called")
	}
	return mock.ListGenresFunc(ctx, search, limit, offset)
}

func (mock *catalogRepoMock) CreateGenre(ctx context.Context, name, slug string) (*domain.Genre, error) {
	if mock.CreateGenreFunc == nil {
		panic("catalogRepoMock.CreateGenreFunc: method is nil but catalogRepo.CreateGenre was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateGenre = append(mock.calls.CreateGenre, struct{ Name, Slug string }{name, slug})
	mock.lock.Unlock()
	return mock.CreateGenreFunc(ctx, name, slug)
}

func (mock *catalogRepoMock) CreateGenreCalls() []struct{ Name, Slug string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateGenre
}

func (mock *catalogRepoMock) DeleteGenreBySlug(ctx context.Context, slug string) error {
	if mock.DeleteGenreBySlugFunc == nil {
		panic("catalogRepoMock.DeleteGenreBySlugFunc: method is nil but catalogRepo.DeleteGenreBySlug was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteGenreBySlug = append(mock.calls.DeleteGenreBySlug, struct{ Slug string }{slug})
	mock.lock.Unlock()
	return mock.DeleteGenreBySlugFunc(ctx, slug)
}

func (mock *catalogRepoMock) DeleteGenreBySlugCalls() []struct{ Slug string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteGenreBySlug
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
