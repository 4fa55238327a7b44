package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// AwardGet handles GET /v1/awards/{awardID}.
type AwardGet struct {
	Fetcher datasources.AwardFetcher
}

func (c AwardGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	awardID, err := pathID(r, "awardID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	award, err := c.Fetcher.FetchAward(ctx, awardID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, award)
}
