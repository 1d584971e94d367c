package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Title   *TitleHandler
	Review  *ReviewHandler
	User    *UserHandler
	Health  *HealthHandler
}

// NewRouter mounts all API routes on a ServeMux. The /users/me routes are
// literal patterns and take precedence over the {username} wildcards.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/v1/auth/token", h.Auth.Token)

	mux.HandleFunc("GET /api/v1/categories", h.Catalog.ListCategories)
	mux.HandleFunc("POST /api/v1/categories", h.Catalog.CreateCategory)
	mux.HandleFunc("DELETE /api/v1/categories/{slug}", h.Catalog.DeleteCategory)

	mux.HandleFunc("GET /api/v1/genres", h.Catalog.ListGenres)
	mux.HandleFunc("POST /api/v1/genres", h.Catalog.CreateGenre)
	mux.HandleFunc("DELETE /api/v1/genres/{slug}", h.Catalog.DeleteGenre)

	mux.HandleFunc("GET /api/v1/titles", h.Title.List)
	mux.HandleFunc("POST /api/v1/titles", h.Title.Create)
	mux.HandleFunc("GET /api/v1/titles/{titleID}", h.Title.Get)
	mux.HandleFunc("PATCH /api/v1/titles/{titleID}", h.Title.Update)
	mux.HandleFunc("DELETE /api/v1/titles/{titleID}", h.Title.Delete)

	mux.HandleFunc("GET /api/v1/titles/{titleID}/reviews", h.Review.ListReviews)
	mux.HandleFunc("POST /api/v1/titles/{titleID}/reviews", h.Review.CreateReview)
	mux.HandleFunc("GET /api/v1/titles/{titleID}/reviews/{reviewID}", h.Review.GetReview)
	mux.HandleFunc("PATCH /api/v1/titles/{titleID}/reviews/{reviewID}", h.Review.UpdateReview)
	mux.HandleFunc("DELETE /api/v1/titles/{titleID}/reviews/{reviewID}", h.Review.DeleteReview)

	mux.HandleFunc("GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments", h.Review.ListComments)
	mux.HandleFunc("POST /api/v1/titles/{titleID}/reviews/{reviewID}/comments", h.Review.CreateComment)
	mux.HandleFunc("GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", h.Review.GetComment)
	mux.HandleFunc("PATCH /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", h.Review.UpdateComment)
	mux.HandleFunc("DELETE /api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", h.Review.DeleteComment)

	mux.HandleFunc("GET /api/v1/users", h.User.List)
	mux.HandleFunc("POST /api/v1/users", h.User.Create)
	mux.HandleFunc("GET /api/v1/users/me", h.User.Me)
	mux.HandleFunc("PATCH /api/v1/users/me", h.User.UpdateMe)
	mux.HandleFunc("GET /api/v1/users/{username}", h.User.Get)
	mux.HandleFunc("PATCH /api/v1/users/{username}", h.User.Update)
	mux.HandleFunc("DELETE /api/v1/users/{username}", h.User.Delete)

	return mux
}
