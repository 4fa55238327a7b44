package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// EntityReviewsList handles GET /v1/entities/{entityID}/reviews.
type EntityReviewsList struct {
	Fetcher datasources.EntityFetcher
	Lister  datasources.EntityReviewLister
}

type EntityReviewsListResponse struct {
	Data []domain.Review `json:"data"`
}

func (c EntityReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entityID, err := pathID(r, "entityID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if _, err := c.Fetcher.FetchEntity(ctx, entityID); err != nil {
		respondError(ctx, w, err)
		return
	}

	reviews, err := c.Lister.ListEntityReviews(ctx, entityID, page, pageSize)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, EntityReviewsListResponse{Data: reviews})
}
