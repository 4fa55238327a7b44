package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// EntitiesList handles GET /v1/entities with filtering, sorting, and
// pagination.
type EntitiesList struct {
	Lister interface {
		datasources.EntityLister
		datasources.EntityCounter
	}
}

type EntitiesListResponse struct {
	Data     []domain.Entity      `json:"data"`
	Metadata EntitiesListMetadata `json:"metadata"`
}

type EntitiesListMetadata struct {
	TotalRows int64 `json:"total_rows"`
}

func (c EntitiesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	filters, err := entityFiltersFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse entity filters in query string", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	options, err := entityListOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse entity list options in query string", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	entities, err := c.Lister.ListEntities(ctx, filters, options)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	total, err := c.Lister.CountEntities(ctx, filters)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, EntitiesListResponse{
		Data:     entities,
		Metadata: EntitiesListMetadata{TotalRows: total},
	})
}

func entityFiltersFromQuery(q url.Values) (domain.EntityFilters, error) {
	var filters domain.EntityFilters

	if t := q.Get("type"); t != "" {
		if t != string(domain.EntityTypeMovie) && t != string(domain.EntityTypeTV) {
			return domain.EntityFilters{}, fmt.Errorf("invalid type filter [%s]", t)
		}
		filters.Type = domain.EntityType(t)
	}

	filters.Genre = q.Get("genre")
	filters.TitleContains = q.Get("title")

	if s := q.Get("min_rating"); s != "" {
		minRating, err := strconv.ParseFloat(s, 64)
		if err != nil || minRating < 0 || minRating > 10 {
			return domain.EntityFilters{}, fmt.Errorf("invalid min_rating filter [%s]", s)
		}
		filters.MinRating = minRating
	}

	if s := q.Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return domain.EntityFilters{}, fmt.Errorf("invalid year filter [%s]", s)
		}
		filters.ReleaseYear = year
	}

	return filters, nil
}

func entityListOptionsFromQuery(q url.Values) (domain.EntityListOptions, error) {
	page, pageSize, err := parsePagination(q)
	if err != nil {
		return domain.EntityListOptions{}, err
	}

	options := domain.EntityListOptions{Page: page, PageSize: pageSize}

	if s := q.Get("sort_by"); s != "" {
		valid := false
		for _, f := range domain.ValidEntityOrderingFields {
			if s == string(f) {
				valid = true
				break
			}
		}
		if !valid {
			return domain.EntityListOptions{}, fmt.Errorf("invalid sort_by value [%s]", s)
		}
		options.OrderBy = domain.EntityOrderingField(s)
	}

	options.Desc = q.Get("sort_desc") == "true"

	return options, nil
}
