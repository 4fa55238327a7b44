package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// PeopleList handles GET /v1/people.
type PeopleList struct {
	Lister datasources.PersonLister
}

type PeopleListResponse struct {
	Data []domain.Person `json:"data"`
}

func (c PeopleList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	filters := domain.PersonFilters{NameContains: r.URL.Query().Get("name")}

	people, err := c.Lister.ListPeople(ctx, filters, page, pageSize)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, PeopleListResponse{Data: people})
}
