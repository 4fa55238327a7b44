package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// AuthMe handles GET /v1/auth/me, returning the authenticated user.
type AuthMe struct {
	Fetcher datasources.UserFetcher
}

func (c AuthMe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := c.Fetcher.FetchUser(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, user)
}
