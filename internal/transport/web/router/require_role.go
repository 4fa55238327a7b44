package router

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func requireRoleMiddleware(role domain.Role, next http.Handler) http.Handler {
	return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if domain.RoleFromContext(r.Context()) != role {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "attempt to use endpoint without required role",
				"required_role", role)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message": "forbidden"}`))
			return
		}

		next.ServeHTTP(w, r)
	}))
}
