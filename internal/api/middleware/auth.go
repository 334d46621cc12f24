// Package middleware provides HTTP middleware for authentication,
// logging, and CORS.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fundscope/Fund-Discovery-Backend/internal/api/response"
	"github.com/fundscope/Fund-Discovery-Backend/internal/auth"
)

type contextKey string

// userIDKey is the request-context key under which the authenticated
// user's ID is stored.
const userIDKey contextKey = "userID"

// BearerAuth returns middleware that validates the Authorization bearer
// token on every request and attaches the authenticated user's ID to the
// request context. Requests without a valid token are rejected with 401
// before reaching any handler.
func BearerAuth(verifier *auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.RespondError(w, http.StatusUnauthorized, "authentication required", "Missing Authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				response.RespondError(w, http.StatusUnauthorized, "authentication required", "Authorization header must use the Bearer scheme")
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "authentication required", "Token is invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user's ID from the request context.
// The empty string means the request did not pass through BearerAuth.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// WithUserID returns a context carrying the given user ID. Test helper
// for exercising handlers without the full middleware stack.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
