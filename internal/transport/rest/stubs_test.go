package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/auth"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/catalog"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/review"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/title"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/user"
)

// Function-field stubs for the handler-facing service interfaces. Tests set
// only the methods a route touches; an unset method panics and fails the test.

type authServiceStub struct {
	RequestSignupFunc func(ctx context.Context, input auth.SignupInput) (*auth.SignupResult, error)
	ExchangeCodeFunc  func(ctx context.Context, input auth.TokenInput) (*auth.TokenResult, error)
}

func (s *authServiceStub) RequestSignup(ctx context.Context, input auth.SignupInput) (*auth.SignupResult, error) {
	return s.RequestSignupFunc(ctx, input)
}

func (s *authServiceStub) ExchangeCode(ctx context.Context, input auth.TokenInput) (*auth.TokenResult, error) {
	return s.ExchangeCodeFunc(ctx, input)
}

type catalogServiceStub struct {
	ListCategoriesFunc func(ctx context.Context, input catalog.ListInput) ([]domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, input catalog.EntityInput) (*domain.Category, error)
	DeleteCategoryFunc func(ctx context.Context, slug string) error
	ListGenresFunc     func(ctx context.Context, input catalog.ListInput) ([]domain.Genre, error)
	CreateGenreFunc    func(ctx context.Context, input catalog.EntityInput) (*domain.Genre, error)
	DeleteGenreFunc    func(ctx context.Context, slug string) error
}

func (s *catalogServiceStub) ListCategories(ctx context.Context, input catalog.ListInput) ([]domain.Category, error) {
	return s.ListCategoriesFunc(ctx, input)
}

func (s *catalogServiceStub) CreateCategory(ctx context.Context, input catalog.EntityInput) (*domain.Category, error) {
	return s.CreateCategoryFunc(ctx, input)
}

func (s *catalogServiceStub) DeleteCategory(ctx context.Context, slug string) error {
	return s.DeleteCategoryFunc(ctx, slug)
}

func (s *catalogServiceStub) ListGenres(ctx context.Context, input catalog.ListInput) ([]domain.Genre, error) {
	return s.ListGenresFunc(ctx, input)
}

func (s *catalogServiceStub) CreateGenre(ctx context.Context, input catalog.EntityInput) (*domain.Genre, error) {
	return s.CreateGenreFunc(ctx, input)
}

func (s *catalogServiceStub) DeleteGenre(ctx context.Context, slug string) error {
	return s.DeleteGenreFunc(ctx, slug)
}

type titleServiceStub struct {
	GetTitleFunc    func(ctx context.Context, id uuid.UUID) (*domain.Title, error)
	ListTitlesFunc  func(ctx context.Context, input title.ListTitlesInput) ([]*domain.Title, error)
	CreateTitleFunc func(ctx context.Context, input title.CreateTitleInput) (*domain.Title, error)
	UpdateTitleFunc func(ctx context.Context, input title.UpdateTitleInput) (*domain.Title, error)
	DeleteTitleFunc func(ctx context.Context, id uuid.UUID) error
}

func (s *titleServiceStub) GetTitle(ctx context.Context, id uuid.UUID) (*domain.Title, error) {
	return s.GetTitleFunc(ctx, id)
}

func (s *titleServiceStub) ListTitles(ctx context.Context, input title.ListTitlesInput) ([]*domain.Title, error) {
	return s.ListTitlesFunc(ctx, input)
}

func (s *titleServiceStub) CreateTitle(ctx context.Context, input title.CreateTitleInput) (*domain.Title, error) {
	return s.CreateTitleFunc(ctx, input)
}

func (s *titleServiceStub) UpdateTitle(ctx context.Context, input title.UpdateTitleInput) (*domain.Title, error) {
	return s.UpdateTitleFunc(ctx, input)
}

func (s *titleServiceStub) DeleteTitle(ctx context.Context, id uuid.UUID) error {
	return s.DeleteTitleFunc(ctx, id)
}

type reviewServiceStub struct {
	ListReviewsFunc  func(ctx context.Context, titleID uuid.UUID, page review.PageInput) ([]domain.Review, error)
	GetReviewFunc    func(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error)
	CreateReviewFunc func(ctx context.Context, titleID uuid.UUID, input review.CreateReviewInput) (*domain.Review, error)
	UpdateReviewFunc func(ctx context.Context, titleID, reviewID uuid.UUID, input review.UpdateReviewInput) (*domain.Review, error)
	DeleteReviewFunc func(ctx context.Context, titleID, reviewID uuid.UUID) error

	ListCommentsFunc  func(ctx context.Context, titleID, reviewID uuid.UUID, page review.PageInput) ([]domain.Comment, error)
	GetCommentFunc    func(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*domain.Comment, error)
	CreateCommentFunc func(ctx context.Context, titleID, reviewID uuid.UUID, input review.CommentInput) (*domain.Comment, error)
	UpdateCommentFunc func(ctx context.Context, titleID, reviewID, commentID uuid.UUID, input review.CommentInput) (*domain.Comment, error)
	DeleteCommentFunc func(ctx context.Context, titleID, reviewID, commentID uuid.UUID) error
}

func (s *reviewServiceStub) ListReviews(ctx context.Context, titleID uuid.UUID, page review.PageInput) ([]domain.Review, error) {
	return s.ListReviewsFunc(ctx, titleID, page)
}

func (s *reviewServiceStub) GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error) {
	return s.GetReviewFunc(ctx, titleID, reviewID)
}

func (s *reviewServiceStub) CreateReview(ctx context.Context, titleID uuid.UUID, input review.CreateReviewInput) (*domain.Review, error) {
	return s.CreateReviewFunc(ctx, titleID, input)
}

func (s *reviewServiceStub) UpdateReview(ctx context.Context, titleID, reviewID uuid.UUID, input review.UpdateReviewInput) (*domain.Review, error) {
	return s.UpdateReviewFunc(ctx, titleID, reviewID, input)
}

func (s *reviewServiceStub) DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error {
	return s.DeleteReviewFunc(ctx, titleID, reviewID)
}

func (s *reviewServiceStub) ListComments(ctx context.Context, titleID, reviewID uuid.UUID, page review.PageInput) ([]domain.Comment, error) {
	return s.ListCommentsFunc(ctx, titleID, reviewID, page)
}

func (s *reviewServiceStub) GetComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*domain.Comment, error) {
	return s.GetCommentFunc(ctx, titleID, reviewID, commentID)
}

func (s *reviewServiceStub) CreateComment(ctx context.Context, titleID, reviewID uuid.UUID, input review.CommentInput) (*domain.Comment, error) {
	return s.CreateCommentFunc(ctx, titleID, reviewID, input)
}

func (s *reviewServiceStub) UpdateComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID, input review.CommentInput) (*domain.Comment, error) {
	return s.UpdateCommentFunc(ctx, titleID, reviewID, commentID, input)
}

func (s *reviewServiceStub) DeleteComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) error {
	return s.DeleteCommentFunc(ctx, titleID, reviewID, commentID)
}

type userServiceStub struct {
	ListUsersFunc  func(ctx context.Context, input user.ListUsersInput) (*user.ListUsersResult, error)
	GetUserFunc    func(ctx context.Context, username string) (*domain.User, error)
	CreateUserFunc func(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUserFunc func(ctx context.Context, username string, input user.UpdateUserInput) (*domain.User, error)
	DeleteUserFunc func(ctx context.Context, username string) error
	MeFunc         func(ctx context.Context) (*domain.User, error)
	UpdateMeFunc   func(ctx context.Context, input user.UpdateMeInput) (*domain.User, error)
}

func (s *userServiceStub) ListUsers(ctx context.Context, input user.ListUsersInput) (*user.ListUsersResult, error) {
	return s.ListUsersFunc(ctx, input)
}

func (s *userServiceStub) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return s.GetUserFunc(ctx, username)
}

func (s *userServiceStub) CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error) {
	return s.CreateUserFunc(ctx, input)
}

func (s *userServiceStub) UpdateUser(ctx context.Context, username string, input user.UpdateUserInput) (*domain.User, error) {
	return s.UpdateUserFunc(ctx, username, input)
}

func (s *userServiceStub) DeleteUser(ctx context.Context, username string) error {
	return s.DeleteUserFunc(ctx, username)
}

func (s *userServiceStub) Me(ctx context.Context) (*domain.User, error) {
	return s.MeFunc(ctx)
}

func (s *userServiceStub) UpdateMe(ctx context.Context, input user.UpdateMeInput) (*domain.User, error) {
	return s.UpdateMeFunc(ctx, input)
}

type routerStubs struct {
	auth    *authServiceStub
	catalog *catalogServiceStub
	title   *titleServiceStub
	review  *reviewServiceStub
	user    *userServiceStub
}

// newTestRouter mounts all routes over the given stubs so requests flow
// through real URL patterns and PathValue extraction.
func newTestRouter(stubs routerStubs) *http.ServeMux {
	logger := slog.Default()
	if stubs.auth == nil {
		stubs.auth = &authServiceStub{}
	}
	if stubs.catalog == nil {
		stubs.catalog = &catalogServiceStub{}
	}
	if stubs.title == nil {
		stubs.title = &titleServiceStub{}
	}
	if stubs.review == nil {
		stubs.review = &reviewServiceStub{}
	}
	if stubs.user == nil {
		stubs.user = &userServiceStub{}
	}
	return NewRouter(Handlers{
		Auth:    NewAuthHandler(stubs.auth, logger),
		Catalog: NewCatalogHandler(stubs.catalog, logger),
		Title:   NewTitleHandler(stubs.title, logger),
		Review:  NewReviewHandler(stubs.review, logger),
		User:    NewUserHandler(stubs.user, logger),
		Health:  NewHealthHandler(&dbPingerMock{}, "test"),
	})
}
