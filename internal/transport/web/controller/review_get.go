package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// ReviewGet handles GET /v1/reviews/{reviewID}.
type ReviewGet struct {
	Fetcher datasources.ReviewFetcher
}

func (c ReviewGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	review, err := c.Fetcher.FetchReview(ctx, reviewID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, review)
}
