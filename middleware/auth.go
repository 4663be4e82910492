package middleware

import (
	"bistro-boss/repositories"
	"bistro-boss/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

const (
	msgUnauthorized = "UnAuthorization access"
	msgForbidden    = "forbidden message"
)

// ClaimsFromContext returns the identity attached by AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// AuthMiddleware verifies bearer tokens and attaches the decoded identity to the context
func AuthMiddleware(tokens *utils.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				utils.Log.Debugf("token rejected: %v", err)
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware lets the request through only when the stored user for the identity is an admin.
// It must run after AuthMiddleware.
func AdminMiddleware(users repositories.IUserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			user, err := users.FindByEmail(ctx, claims.Email)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				utils.Log.Errorf("admin check for %s: %v", claims.Email, err)
				utils.WriteError(w, http.StatusInternalServerError, "admin check failed")
				return
			}
			if !user.IsAdmin() {
				utils.WriteError(w, http.StatusForbidden, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
