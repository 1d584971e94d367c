package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListCategories(ctx context.Context, input catalog.ListInput) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input catalog.EntityInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
	ListGenres(ctx context.Context, input catalog.ListInput) ([]domain.Genre, error)
	CreateGenre(ctx context.Context, input catalog.EntityInput) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, slug string) error
}

// CatalogHandler serves category and genre endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type entityRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type entityResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context(), listInput(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]entityResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, entityResponse{Name: c.Name, Slug: c.Slug})
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateCategory handles POST /categories.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req entityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateCategory(r.Context(), catalog.EntityInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entityResponse{Name: created.Name, Slug: created.Slug})
}

// DeleteCategory handles DELETE /categories/{slug}.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCategory(r.Context(), r.PathValue("slug")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGenres handles GET /genres.
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.ListGenres(r.Context(), listInput(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]entityResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, entityResponse{Name: g.Name, Slug: g.Slug})
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateGenre handles POST /genres.
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req entityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateGenre(r.Context(), catalog.EntityInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entityResponse{Name: created.Name, Slug: created.Slug})
}

// DeleteGenre handles DELETE /genres/{slug}.
func (h *CatalogHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGenre(r.Context(), r.PathValue("slug")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func listInput(r *http.Request) catalog.ListInput {
	limit, offset := pageParams(r)
	return catalog.ListInput{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	}
}

// pageParams reads limit and offset query parameters. Unparseable values
// fall back to the service defaults.
func pageParams(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	return limit, offset
}
