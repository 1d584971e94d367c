package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

var (
	_ reviewRepo = &reviewRepoMock{}
	_ titleRepo  = &titleRepoMock{}
	_ userRepo   = &userRepoMock{}
)

type reviewRepoMock struct {
	GetReviewFunc              func(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error)
	ListReviewsFunc            func(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]domain.Review, error)
	CreateReviewFunc           func(ctx context.Context, rev *domain.Review) error
	UpdateReviewFunc           func(ctx context.Context, rev *domain.Review) error
	DeleteReviewFunc           func(ctx context.Context, titleID, reviewID uuid.UUID) error
	ExistsByTitleAndAuthorFunc func(ctx context.Context, titleID, authorID uuid.UUID) (bool, error)

	GetCommentFunc    func(ctx context.Context, reviewID, commentID uuid.UUID) (*domain.Comment, error)
	ListCommentsFunc  func(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	CreateCommentFunc func(ctx context.Context, c *domain.Comment) error
	UpdateCommentFunc func(ctx context.Context, c *domain.Comment) error
	DeleteCommentFunc func(ctx context.Context, reviewID, commentID uuid.UUID) error

	calls struct {
		CreateReview  []struct{ Review *domain.Review }
		UpdateReview  []struct{ Review *domain.Review }
		DeleteReview  []struct{ TitleID, ReviewID uuid.UUID }
		CreateComment []struct{ Comment *domain.Comment }
		UpdateComment []struct{ Comment *domain.Comment }
		DeleteComment []struct{ ReviewID, CommentID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *reviewRepoMock) GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error) {
	if mock.GetReviewFunc == nil {
		panic("reviewRepoMock.GetReviewFunc: method is nil but reviewRepo.GetReview was just called")
	}
	return mock.GetReviewFunc(ctx, titleID, reviewID)
}

func (mock *reviewRepoMock) ListReviews(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	if mock.ListReviewsFunc == nil {
		panic("reviewRepoMock.ListReviewsFunc: method is nil but reviewRepo.ListReviews was just called")
	}
	return mock.ListReviewsFunc(ctx, titleID, limit, offset)
}

func (mock *reviewRepoMock) CreateReview(ctx context.Context, rev *domain.Review) error {
	if mock.CreateReviewFunc == nil {
		panic("reviewRepoMock.CreateReviewFunc: method is nil but reviewRepo.CreateReview was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateReview = append(mock.calls.CreateReview, struct{ Review *domain.Review }{rev})
	mock.lock.Unlock()
	return mock.CreateReviewFunc(ctx, rev)
}

func (mock *reviewRepoMock) CreateReviewCalls() []struct{ Review *domain.Review } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateReview
}

func (mock *reviewRepoMock) UpdateReview(ctx context.Context, rev *domain.Review) error {
	if mock.UpdateReviewFunc == nil {
		panic("reviewRepoMock.UpdateReviewFunc: method is nil but reviewRepo.UpdateReview was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateReview = append(mock.calls.UpdateReview, struct{ Review *domain.Review }{rev})
	mock.lock.Unlock()
	return mock.UpdateReviewFunc(ctx, rev)
}

func (mock *reviewRepoMock) UpdateReviewCalls() []struct{ Review *domain.Review } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateReview
}

func (mock *reviewRepoMock) DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error {
	if mock.DeleteReviewFunc == nil {
		panic("reviewRepoMock.DeleteReviewFunc: method is nil but reviewRepo.DeleteReview was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteReview = append(mock.calls.DeleteReview, struct{ TitleID, ReviewID uuid.UUID }{titleID, reviewID})
	mock.lock.Unlock()
	return mock.DeleteReviewFunc(ctx, titleID, reviewID)
}

func (mock *reviewRepoMock) DeleteReviewCalls() []struct{ TitleID, ReviewID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteReview
}

func (mock *reviewRepoMock) ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID uuid.UUID) (bool, error) {
	if mock.ExistsByTitleAndAuthorFunc == nil {
		panic("reviewRepoMock.ExistsByTitleAndAuthorFunc: method is nil but reviewRepo.ExistsByTitleAndAuthor was just called")
	}
	return mock.ExistsByTitleAndAuthorFunc(ctx, titleID, authorID)
}

func (mock *reviewRepoMock) GetComment(ctx context.Context, reviewID, commentID uuid.UUID) (*domain.Comment, error) {
	if mock.GetCommentFunc == nil {
		panic("reviewRepoMock.GetCommentFunc: method is nil but reviewRepo.GetComment was just called")
	}
	return mock.GetCommentFunc(ctx, reviewID, commentID)
}

func (mock *reviewRepoMock) ListComments(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	if mock.ListCommentsFunc == nil {
		panic("reviewRepoMock.ListCommentsFunc: method is nil but reviewRepo.ListComments was just called")
	}
	return mock.ListCommentsFunc(ctx, reviewID, limit, offset)
}

func (mock *reviewRepoMock) CreateComment(ctx context.Context, c *domain.Comment) error {
	if mock.CreateCommentFunc == nil {
		panic("reviewRepoMock.CreateCommentFunc: method is nil but reviewRepo.CreateComment was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, struct{ Comment *domain.Comment }{c})
	mock.lock.Unlock()
	return mock.CreateCommentFunc(ctx, c)
}

func (mock *reviewRepoMock) CreateCommentCalls() []struct{ Comment *domain.Comment } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateComment
}

func (mock *reviewRepoMock) UpdateComment(ctx context.Context, c *domain.Comment) error {
	if mock.UpdateCommentFunc == nil {
		panic("reviewRepoMock.UpdateCommentFunc: method is nil but reviewRepo.UpdateComment was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateComment = append(mock.calls.UpdateComment, struct{ Comment *domain.Comment }{c})
	mock.lock.Unlock()
	return mock.UpdateCommentFunc(ctx, c)
}

func (mock *reviewRepoMock) UpdateCommentCalls() []struct{ Comment *domain.Comment } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateComment
}

func (mock *reviewRepoMock) DeleteComment(ctx context.Context, reviewID, commentID uuid.UUID) error {
	if mock.DeleteCommentFunc == nil {
		panic("reviewRepoMock.DeleteCommentFunc: method is nil but reviewRepo.DeleteComment was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, struct{ ReviewID, CommentID uuid.UUID }{reviewID, commentID})
	mock.lock.Unlock()
	return mock.DeleteCommentFunc(ctx, reviewID, commentID)
}

func (mock *reviewRepoMock) DeleteCommentCalls() []struct{ ReviewID, CommentID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteComment
}

type titleRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Title, error)
}

func (mock *titleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Title, error) {
	if mock.GetByIDFunc == nil {
		panic("titleRepoMock.GetByIDFunc: method is nil but titleRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
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
