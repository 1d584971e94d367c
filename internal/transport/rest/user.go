package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
	"github.com/Rexant-b2k/RateReviewRevive/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	ListUsers(ctx context.Context, input user.ListUsersInput) (*user.ListUsersResult, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, username string, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, username string) error
	Me(ctx context.Context) (*domain.User, error)
	UpdateMe(ctx context.Context, input user.UpdateMeInput) (*domain.User, error)
}

// UserHandler serves account administration and self-service endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Bio      *string `json:"bio"`
	Role     string  `json:"role"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
	Role     *string `json:"role"`
}

type updateMeRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
}

type accountResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Bio      *string `json:"bio"`
	Role     string  `json:"role"`
}

type listUsersResponse struct {
	Users []accountResponse `json:"users"`
	Total int               `json:"total"`
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	result, err := h.svc.ListUsers(r.Context(), user.ListUsersInput{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := listUsersResponse{
		Users: make([]accountResponse, 0, len(result.Users)),
		Total: result.Total,
	}
	for _, u := range result.Users {
		out.Users = append(out.Users, toAccountResponse(&u))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /users/{username}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(u))
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(created))
}

// Update handles PATCH /users/{username}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var role *domain.Role
	if req.Role != nil {
		v := domain.Role(*req.Role)
		role = &v
	}

	updated, err := h.svc.UpdateUser(r.Context(), r.PathValue("username"), user.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
		Role:     role,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(updated))
}

// Delete handles DELETE /users/{username}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUser(r.Context(), r.PathValue("username")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(u))
}

// UpdateMe handles PATCH /users/me. Role is not accepted here.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateMe(r.Context(), user.UpdateMeInput{
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(updated))
}

func toAccountResponse(u *domain.User) accountResponse {
	return accountResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Role:     u.Role.String(),
	}
}
