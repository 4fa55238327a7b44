package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// EntityRatingGet handles GET /v1/entities/{entityID}/rating. It refreshes
// the stored rating from the review records before responding, so the
// answer is exact even if a background refresh was missed.
type EntityRatingGet struct {
	Fetcher    datasources.EntityFetcher
	Aggregator interface {
		Execute(ctx context.Context, entityID string) (float64, error)
	}
}

type EntityRatingResponse struct {
	EntityID    string  `json:"entity_id"`
	EntityTitle string  `json:"entity_title"`
	Rating      float64 `json:"rating"`
}

func (c EntityRatingGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entityID, err := pathID(r, "entityID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	entity, err := c.Fetcher.FetchEntity(ctx, entityID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	rating, err := c.Aggregator.Execute(ctx, entityID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, EntityRatingResponse{
		EntityID:    entity.ID,
		EntityTitle: entity.Title,
		Rating:      rating,
	})
}
