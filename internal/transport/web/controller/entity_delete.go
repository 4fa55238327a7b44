package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// EntityDelete handles DELETE /v1/entities/{entityID}. Reviews of the
// entity are removed with it. Admin only; enforced by the router.
type EntityDelete struct {
	Deleter        datasources.EntityDeleter
	ReviewsDeleter datasources.EntityReviewsDeleter
}

func (c EntityDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	entityID, err := pathID(r, "entityID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if err := c.Deleter.DeleteEntity(ctx, entityID); err != nil {
		respondError(ctx, w, err)
		return
	}

	// Reviews of a deleted entity are unreachable anyway; removal failing
	// is not worth failing the request over.
	if _, err := c.ReviewsDeleter.DeleteEntityReviews(ctx, entityID); err != nil {
		logger.ErrorContext(ctx, "unable to delete reviews of deleted entity",
			"error", err, "entityID", entityID)
	}

	w.WriteHeader(http.StatusNoContent)
}
