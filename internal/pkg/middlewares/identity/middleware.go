package identity

import (
	"context"
	"net/http"
	"strconv"

	"marketplace/internal/entities"
)

const (
	userIDHeader = "X-User-Id"
	roleHeader   = "X-User-Role"
)

type contextKey struct{}

var principalKey contextKey

// Middleware resolves the caller's identity from the gateway-injected
// headers and rejects the request if either header is missing or
// malformed. Authentication itself happens upstream.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
			if err != nil || userID <= 0 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role := entities.RoleType(r.Header.Get(roleHeader))
			if role != entities.RoleAdmin && role != entities.RoleVendor {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			principal := entities.Principal{
				UserID: userID,
				Role:   role,
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role does not match.
func RequireRole(role entities.RoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := FromContext(r.Context())
			if !ok || principal.Role != role {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func FromContext(ctx context.Context) (entities.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(entities.Principal)
	return principal, ok
}

// NewContext is a test seam for handlers that read the principal.
func NewContext(ctx context.Context, principal entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}
