package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// UserDelete handles DELETE /v1/users/{userID}. The user's reviews go with
// them, and each affected entity's rating is recomputed. Admin only;
// enforced by the router.
type UserDelete struct {
	Deleter        datasources.UserDeleter
	ReviewsCommand interface {
		Execute(ctx context.Context, req command.DeleteUserReviewsRequest) (command.DeleteUserReviewsResponse, error)
	}
}

func (c UserDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID, err := pathID(r, "userID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	// Reviews first, while the user record still exists for the command's
	// existence check.
	if _, err := c.ReviewsCommand.Execute(ctx, command.DeleteUserReviewsRequest{UserID: userID}); err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := c.Deleter.DeleteUser(ctx, userID); err != nil {
		logger.ErrorContext(ctx, "unable to delete user after removing reviews",
			"error", err, "userID", userID)
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
