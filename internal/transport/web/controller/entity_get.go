package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// EntityGet handles GET /v1/entities/{entityID}.
type EntityGet struct {
	Fetcher datasources.EntityFetcher
}

func (c EntityGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(ctx, w, http.StatusOK, entity)
}
