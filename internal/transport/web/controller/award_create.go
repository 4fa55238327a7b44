package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// AwardCreate handles POST /v1/awards. An award must reference an entity,
// a person, or both. Admin only; enforced by the router.
type AwardCreate struct {
	EntityFetcher datasources.EntityFetcher
	PersonFetcher datasources.PersonFetcher
	Creator       datasources.AwardCreator
}

type AwardCreateRequest struct {
	Name     string `json:"name" validate:"required,max=300"`
	Category string `json:"category" validate:"max=300"`
	Year     int    `json:"year" validate:"required,gte=1900,lte=2100"`
	EntityID string `json:"entity_id" validate:"omitempty,hexadecimal,len=24"`
	PersonID string `json:"person_id" validate:"omitempty,hexadecimal,len=24"`
}

func (c AwardCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req AwardCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode award create request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if req.EntityID == "" && req.PersonID == "" {
		respondBadRequest(ctx, w, "award must reference an entity or a person")
		return
	}

	if req.EntityID != "" {
		if _, err := c.EntityFetcher.FetchEntity(ctx, req.EntityID); err != nil {
			respondError(ctx, w, err)
			return
		}
	}
	if req.PersonID != "" {
		if _, err := c.PersonFetcher.FetchPerson(ctx, req.PersonID); err != nil {
			respondError(ctx, w, err)
			return
		}
	}

	now := time.Now().UTC()
	award := domain.Award{
		ID:        domain.NewID(),
		Name:      req.Name,
		Category:  req.Category,
		Year:      req.Year,
		EntityID:  req.EntityID,
		PersonID:  req.PersonID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.Creator.CreateAward(ctx, award); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, award)
}
