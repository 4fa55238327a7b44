package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// ReviewDelete handles DELETE /v1/reviews/{reviewID}. Author or admin
// only.
type ReviewDelete struct {
	Command interface {
		Execute(ctx context.Context, req command.DeleteReviewRequest) (command.DeleteReviewResponse, error)
	}
}

func (c ReviewDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	_, err = c.Command.Execute(ctx, command.DeleteReviewRequest{
		ReviewID:   reviewID,
		CallerID:   domain.UserIDFromContext(ctx),
		CallerRole: domain.RoleFromContext(ctx),
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
