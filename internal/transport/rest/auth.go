package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rexant-b2k/RateReviewRevive/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	RequestSignup(ctx context.Context, input auth.SignupInput) (*auth.SignupResult, error)
	ExchangeCode(ctx context.Context, input auth.TokenInput) (*auth.TokenResult, error)
}

// AuthHandler serves the passwordless signup and token endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type signupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup handles POST /auth/signup. Repeating a signup with the same
// username and email pair re-sends the confirmation code.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.RequestSignup(r.Context(), auth.SignupInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, signupResponse{
		Username: result.User.Username,
		Email:    result.User.Email,
	})
}

// Token handles POST /auth/token, exchanging a confirmation code for a
// bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ExchangeCode(r.Context(), auth.TokenInput{
		Username:         req.Username,
		ConfirmationCode: req.ConfirmationCode,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: result.AccessToken})
}
