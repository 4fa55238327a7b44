package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/command"
)

// EntityReviewsDelete handles DELETE /v1/entities/{entityID}/reviews.
// Admin only; enforced by the router.
type EntityReviewsDelete struct {
	Command interface {
		Execute(ctx context.Context, req command.DeleteEntityReviewsRequest) (command.DeleteEntityReviewsResponse, error)
	}
}

type EntityReviewsDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

func (c EntityReviewsDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entityID, err := pathID(r, "entityID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	resp, err := c.Command.Execute(ctx, command.DeleteEntityReviewsRequest{EntityID: entityID})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, EntityReviewsDeleteResponse{DeletedCount: resp.DeletedCount})
}
