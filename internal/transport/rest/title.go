package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/title"
)

// titleService defines the minimal interface needed by TitleHandler.
type titleService interface {
	GetTitle(ctx context.Context, id uuid.UUID) (*domain.Title, error)
	ListTitles(ctx context.Context, input title.ListTitlesInput) ([]*domain.Title, error)
	CreateTitle(ctx context.Context, input title.CreateTitleInput) (*domain.Title, error)
	UpdateTitle(ctx context.Context, input title.UpdateTitleInput) (*domain.Title, error)
	DeleteTitle(ctx context.Context, id uuid.UUID) error
}

// TitleHandler serves title endpoints.
type TitleHandler struct {
	svc titleService
	log *slog.Logger
}

// NewTitleHandler creates a TitleHandler.
func NewTitleHandler(svc titleService, logger *slog.Logger) *TitleHandler {
	return &TitleHandler{svc: svc, log: logger.With("handler", "title")}
}

type createTitleRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

type updateTitleRequest struct {
	Name        *string  `json:"name"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

type titleResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Description string           `json:"description"`
	Rating      *float64         `json:"rating"`
	Category    *entityResponse  `json:"category"`
	Genre       []entityResponse `json:"genre"`
}

// List handles GET /titles with category, genre, name and year filters.
func (h *TitleHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listTitlesInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	titles, err := h.svc.ListTitles(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]titleResponse, 0, len(titles))
	for _, t := range titles {
		out = append(out, toTitleResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /titles/{titleID}.
func (h *TitleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "titleID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := h.svc.GetTitle(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTitleResponse(t))
}

// Create handles POST /titles.
func (h *TitleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateTitle(r.Context(), title.CreateTitleInput{
		Name:         req.Name,
		Year:         req.Year,
		Description:  req.Description,
		CategorySlug: req.Category,
		GenreSlugs:   req.Genre,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTitleResponse(created))
}

// Update handles PATCH /titles/{titleID}. Absent fields keep their current
// value; an empty genre list clears the links.
func (h *TitleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "titleID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateTitle(r.Context(), title.UpdateTitleInput{
		ID:           id,
		Name:         req.Name,
		Year:         req.Year,
		Description:  req.Description,
		CategorySlug: req.Category,
		GenreSlugs:   req.Genre,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTitleResponse(updated))
}

// Delete handles DELETE /titles/{titleID}.
func (h *TitleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "titleID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTitle(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toTitleResponse(t *domain.Title) titleResponse {
	resp := titleResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Year:        t.Year,
		Description: t.Description,
		Rating:      t.Rating,
		Genre:       make([]entityResponse, 0, len(t.Genres)),
	}
	if t.Category != nil {
		resp.Category = &entityResponse{Name: t.Category.Name, Slug: t.Category.Slug}
	}
	for _, g := range t.Genres {
		resp.Genre = append(resp.Genre, entityResponse{Name: g.Name, Slug: g.Slug})
	}
	return resp
}

func listTitlesInput(r *http.Request) (title.ListTitlesInput, error) {
	q := r.URL.Query()
	limit, offset := pageParams(r)
	input := title.ListTitlesInput{Limit: limit, Offset: offset}

	if v := q.Get("category"); v != "" {
		input.CategorySlug = &v
	}
	if v := q.Get("genre"); v != "" {
		input.GenreSlug = &v
	}
	if v := q.Get("name"); v != "" {
		input.Name = &v
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return input, domain.NewValidationError("year", "must be an integer")
		}
		input.Year = &year
	}
	return input, nil
}

// pathUUID parses a UUID path segment. An unparseable id addresses nothing,
// hence ErrNotFound rather than a validation error.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}
