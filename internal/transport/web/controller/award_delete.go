package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// AwardDelete handles DELETE /v1/awards/{awardID}. Admin only; enforced
// by the router.
type AwardDelete struct {
	Deleter datasources.AwardDeleter
}

func (c AwardDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	awardID, err := pathID(r, "awardID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if err := c.Deleter.DeleteAward(ctx, awardID); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
