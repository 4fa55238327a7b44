package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// PersonGet handles GET /v1/people/{personID}.
type PersonGet struct {
	Fetcher datasources.PersonFetcher
}

func (c PersonGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	personID, err := pathID(r, "personID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	person, err := c.Fetcher.FetchPerson(ctx, personID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, person)
}
