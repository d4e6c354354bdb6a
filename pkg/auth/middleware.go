package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const adminKey contextKey = "admin_user"

// AdminFromContext returns the authenticated admin username.
func AdminFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminKey).(string)
	return v, ok
}

// WithAdmin stores the admin username in the context.
func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey, username)
}

// RequireAuth verifies the session cookie and puts the admin username into
// the request context. Unauthenticated requests get a 401 JSON body.
func RequireAuth(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			username, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), username)))
		})
	}
}

// DevAdmin is the dummy identity injected when AUTH_REQUIRED=false.
const DevAdmin = "dev-admin"

// DevAuth is the development middleware: every request is treated as the
// dummy admin.
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), DevAdmin)))
	})
}
