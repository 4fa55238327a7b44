package router

import (
	"fmt"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/auth"
	"github.com/Abotareq/imDb-sub000/internal/domain"
	"github.com/Abotareq/imDb-sub000/internal/transport/web/controller"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Role   domain.Role
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (no credentials of its
// kind present).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
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
					_, _ = fmt.Fprint(w, `{"message":"invalid session"}`)
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithRole(ctx, result.Role)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewSessionCookieValidator creates a validator for the signed session
// cookie set at login.
func NewSessionCookieValidator(tokens auth.TokenService) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		cookie, err := r.Cookie(controller.SessionCookieName)
		if err != nil {
			return nil, nil
		}

		claims, err := tokens.Parse(cookie.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid session token")
		}

		return &AuthResult{
			UserID: claims.UserID,
			Role:   claims.Role,
		}, nil
	}
}
