package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// AwardsList handles GET /v1/awards.
type AwardsList struct {
	Lister datasources.AwardLister
}

type AwardsListResponse struct {
	Data []domain.Award `json:"data"`
}

func (c AwardsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	filters, err := awardFiltersFromQuery(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	awards, err := c.Lister.ListAwards(ctx, filters, page, pageSize)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AwardsListResponse{Data: awards})
}

func awardFiltersFromQuery(q url.Values) (domain.AwardFilters, error) {
	var filters domain.AwardFilters

	if s := q.Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return domain.AwardFilters{}, fmt.Errorf("invalid year filter [%s]", s)
		}
		filters.Year = year
	}

	if id := q.Get("entity_id"); id != "" {
		if !domain.ValidID(id) {
			return domain.AwardFilters{}, fmt.Errorf("malformed entity_id filter [%s]", id)
		}
		filters.EntityID = id
	}

	if id := q.Get("person_id"); id != "" {
		if !domain.ValidID(id) {
			return domain.AwardFilters{}, fmt.Errorf("malformed person_id filter [%s]", id)
		}
		filters.PersonID = id
	}

	return filters, nil
}
