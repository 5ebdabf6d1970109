package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/platziflix/catalog/internal/auth"
	"github.com/platziflix/catalog/internal/domain"
)

const bearerPrefix = "Bearer "

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID int64
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using the
// given authentication methods. Requests with no matching auth pass through
// unauthenticated; endpoints that require a user assert it separately.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"kind":    "unauthorized",
						"message": err.Error(),
					})
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewJWTValidator creates a validator for locally issued bearer tokens.
func NewJWTValidator(issuer auth.TokenIssuer) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return nil, nil
		}

		claims, err := issuer.Validate(authHeader[len(bearerPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid bearer token")
		}

		return &AuthResult{UserID: claims.UserID}, nil
	}
}
