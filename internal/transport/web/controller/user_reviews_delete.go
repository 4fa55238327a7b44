package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/command"
)

// UserReviewsDelete handles DELETE /v1/users/{userID}/reviews. Admin
// only; enforced by the router.
type UserReviewsDelete struct {
	Command interface {
		Execute(ctx context.Context, req command.DeleteUserReviewsRequest) (command.DeleteUserReviewsResponse, error)
	}
}

type UserReviewsDeleteResponse struct {
	EntityIDs []string `json:"entity_ids"`
}

func (c UserReviewsDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathID(r, "userID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	resp, err := c.Command.Execute(ctx, command.DeleteUserReviewsRequest{UserID: userID})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	entityIDs := resp.EntityIDs
	if entityIDs == nil {
		entityIDs = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, UserReviewsDeleteResponse{EntityIDs: entityIDs})
}
