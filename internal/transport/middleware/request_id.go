package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Rexant-b2k/RateReviewRevive/pkg/ctxutil"
)

// RequestID tags every request with an id, honoring one supplied by the
// caller, and echoes it back in the X-Request-Id header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
