package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// UserGet handles GET /v1/users/{userID}. Self or admin only.
type UserGet struct {
	Fetcher datasources.UserFetcher
}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathID(r, "userID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if userID != domain.UserIDFromContext(ctx) && domain.RoleFromContext(ctx) != domain.RoleAdmin {
		respondError(ctx, w, domain.ErrForbidden)
		return
	}

	user, err := c.Fetcher.FetchUser(ctx, userID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, user)
}
