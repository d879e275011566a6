package http

import (
	"net/http"

	"github.com/driftlab/driftboard/internal/board/session"
	"github.com/driftlab/driftboard/pkg/boardsdk"
	"github.com/driftlab/driftboard/pkg/httpx"
)

// SessionMiddleware decodes the session cookie once per request and binds
// the resolved user id to the request context. Requests without a valid
// session pass through untouched; RequireAuth does the gating.
func SessionMiddleware(sessions *session.Manager) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := sessions.UserID(r); ok {
				r = r.WithContext(httpx.ContextWithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth aborts with a generic 401 before the handler runs when no
// user id is bound to the request context.
func RequireAuth() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := httpx.UserIDFromContext(r.Context()); !ok {
				httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{
					Error: "not authenticated",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows the configured browser origin to call the API with
// credentials. An empty origin disables CORS handling entirely.
func CORSMiddleware(origin string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if origin == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
