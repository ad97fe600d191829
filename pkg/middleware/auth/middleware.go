package auth

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type Middleware struct {
	secret    []byte
	adminRole string
	devBypass bool
	leeway    time.Duration
}

// Middleware authenticates the request when a bearer token is present
// and stashes the user in the context. Requests without a token
// continue unauthenticated; the per-procedure guards decide whether
// that is acceptable.
func (m *Middleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev bypass for local testing (NEVER enable in prod)
			if m.devBypass {
				if u := devUserFromHeaders(r); u.Username != "" {
					next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
					return
				}
			}

			if raw := bearerToken(r); raw != "" && len(m.secret) > 0 {
				u, err := m.verifyToken(raw)
				if err != nil {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
				return
			}

			// No token; continue unauthenticated
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser returns a child context carrying u.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// Dev-only user injection via headers when AUTH_DEV_BYPASS=true
func devUserFromHeaders(r *http.Request) User {
	user := r.Header.Get("X-Dev-User")
	if user == "" {
		return User{}
	}
	return User{
		Username: user,
		Role:     Role{Name: r.Header.Get("X-Dev-Role")},
	}
}
