package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// PersonDelete handles DELETE /v1/people/{personID}. Admin only; enforced
// by the router.
type PersonDelete struct {
	Deleter datasources.PersonDeleter
}

func (c PersonDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	personID, err := pathID(r, "personID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if err := c.Deleter.DeletePerson(ctx, personID); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
