package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// EntityUpdate handles PATCH /v1/entities/{entityID}. Partial update; only
// fields present in the body change. Admin only; enforced by the router.
type EntityUpdate struct {
	Repository interface {
		datasources.EntityFetcher
		datasources.EntityUpdater
	}
}

type EntityUpdateRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=500"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	ReleaseYear *int             `json:"release_year" validate:"omitempty,gte=1870,lte=2100"`
	Genres      *[]GenrePayload  `json:"genres" validate:"omitempty,dive"`
	Directors   *[]string        `json:"directors"`
	Cast        *[]CastPayload   `json:"cast" validate:"omitempty,dive"`
	Seasons     *[]SeasonPayload `json:"seasons" validate:"omitempty,dive"`
}

func (c EntityUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	entityID, err := pathID(r, "entityID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	var req EntityUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode entity update request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	entity, err := c.Repository.FetchEntity(ctx, entityID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.ReleaseYear != nil {
		entity.ReleaseYear = *req.ReleaseYear
	}
	if req.Genres != nil {
		entity.Genres = genresFromPayload(*req.Genres)
	}
	if req.Directors != nil {
		entity.Directors = *req.Directors
	}
	if req.Cast != nil {
		entity.Cast = castFromPayload(*req.Cast)
	}
	if req.Seasons != nil {
		entity.Seasons = seasonsFromPayload(*req.Seasons)
	}
	entity.UpdatedAt = time.Now().UTC()

	if err := c.Repository.UpdateEntity(ctx, entity); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, entity)
}
