package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// AwardUpdate handles PATCH /v1/awards/{awardID}. Admin only; enforced by
// the router.
type AwardUpdate struct {
	Repository interface {
		datasources.AwardFetcher
		datasources.AwardUpdater
	}
}

type AwardUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=300"`
	Category *string `json:"category" validate:"omitempty,max=300"`
	Year     *int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
}

func (c AwardUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	awardID, err := pathID(r, "awardID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	var req AwardUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode award update request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	award, err := c.Repository.FetchAward(ctx, awardID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if req.Name != nil {
		award.Name = *req.Name
	}
	if req.Category != nil {
		award.Category = *req.Category
	}
	if req.Year != nil {
		award.Year = *req.Year
	}
	award.UpdatedAt = time.Now().UTC()

	if err := c.Repository.UpdateAward(ctx, award); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, award)
}
