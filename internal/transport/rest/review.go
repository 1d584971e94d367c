package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	ListReviews(ctx context.Context, titleID uuid.UUID, page review.PageInput) ([]domain.Review, error)
	GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*domain.Review, error)
	CreateReview(ctx context.Context, titleID uuid.UUID, input review.CreateReviewInput) (*domain.Review, error)
	UpdateReview(ctx context.Context, titleID, reviewID uuid.UUID, input review.UpdateReviewInput) (*domain.Review, error)
	DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error

	ListComments(ctx context.Context, titleID, reviewID uuid.UUID, page review.PageInput) ([]domain.Comment, error)
	GetComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*domain.Comment, error)
	CreateComment(ctx context.Context, titleID, reviewID uuid.UUID, input review.CommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID, input review.CommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) error
}

// ReviewHandler serves review and comment endpoints nested under titles.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type createReviewRequest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type updateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

type reviewResponse struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

type commentRequest struct {
	Text string `json:"text"`
}

type commentResponse struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
}

// ListReviews handles GET /titles/{titleID}/reviews, newest first.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathUUID(r, "titleID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	limit, offset := pageParams(r)
	reviews, err := h.svc.ListReviews(r.Context(), titleID, review.PageInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, toReviewResponse(&rev))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetReview handles GET /titles/{titleID}/reviews/{reviewID}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rev, err := h.svc.GetReview(r.Context(), titleID, reviewID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(rev))
}

// CreateReview handles POST /titles/{titleID}/reviews.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathUUID(r, "titleID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateReview(r.Context(), titleID, review.CreateReviewInput{
		Text:  req.Text,
		Score: req.Score,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(created))
}

// UpdateReview handles PATCH /titles/{titleID}/reviews/{reviewID}.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateReview(r.Context(), titleID, reviewID, review.UpdateReviewInput{
		Text:  req.Text,
		Score: req.Score,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(updated))
}

// DeleteReview handles DELETE /titles/{titleID}/reviews/{reviewID}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteReview(r.Context(), titleID, reviewID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComments handles GET /titles/{titleID}/reviews/{reviewID}/comments,
// oldest first.
func (h *ReviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	limit, offset := pageParams(r)
	comments, err := h.svc.ListComments(r.Context(), titleID, reviewID, review.PageInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(&c))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetComment handles GET .../comments/{commentID}.
func (h *ReviewHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, err := commentPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.GetComment(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

// CreateComment handles POST /titles/{titleID}/reviews/{reviewID}/comments.
func (h *ReviewHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateComment(r.Context(), titleID, reviewID, review.CommentInput{Text: req.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(created))
}

// UpdateComment handles PATCH .../comments/{commentID}.
func (h *ReviewHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, err := commentPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateComment(r.Context(), titleID, reviewID, commentID, review.CommentInput{Text: req.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(updated))
}

// DeleteComment handles DELETE .../comments/{commentID}.
func (h *ReviewHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, err := commentPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), titleID, reviewID, commentID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toReviewResponse(rev *domain.Review) reviewResponse {
	return reviewResponse{
		ID:      rev.ID.String(),
		Author:  rev.AuthorUsername,
		Text:    rev.Text,
		Score:   rev.Score,
		PubDate: rev.PubDate,
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:      c.ID.String(),
		Author:  c.AuthorUsername,
		Text:    c.Text,
		PubDate: c.PubDate,
	}
}

func reviewPath(r *http.Request) (titleID, reviewID uuid.UUID, err error) {
	if titleID, err = pathUUID(r, "titleID"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if reviewID, err = pathUUID(r, "reviewID"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return titleID, reviewID, nil
}

func commentPath(r *http.Request) (titleID, reviewID, commentID uuid.UUID, err error) {
	if titleID, reviewID, err = reviewPath(r); err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}
	if commentID, err = pathUUID(r, "commentID"); err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}
	return titleID, reviewID, commentID, nil
}
