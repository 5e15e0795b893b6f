package middleware

import (
	"context"
	"net/http"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/auth"
)

type contextKey string

// AdminIDKey is the request-context key holding the authenticated admin id.
const AdminIDKey contextKey = "admin_id"

// RequireAdmin validates the admin session cookie and injects the admin
// id into the request context.
func RequireAdmin(sessions *auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Error(w, `{"error":"not authenticated"}`, http.StatusUnauthorized)
				return
			}

			adminID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || adminID == "" {
				http.Error(w, `{"error":"session expired"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
