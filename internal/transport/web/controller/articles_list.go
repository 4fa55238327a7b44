package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// ArticlesList handles GET /v1/articles.
type ArticlesList struct {
	Lister datasources.ArticleLister
}

type ArticlesListResponse struct {
	Data []domain.Article `json:"data"`
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	filters, err := articleFiltersFromQuery(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	articles, err := c.Lister.ListArticles(ctx, filters, page, pageSize)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ArticlesListResponse{Data: articles})
}

func articleFiltersFromQuery(q url.Values) (domain.ArticleFilters, error) {
	var filters domain.ArticleFilters

	if id := q.Get("entity_id"); id != "" {
		if !domain.ValidID(id) {
			return domain.ArticleFilters{}, fmt.Errorf("malformed entity_id filter [%s]", id)
		}
		filters.EntityID = id
	}

	if id := q.Get("author_id"); id != "" {
		if !domain.ValidID(id) {
			return domain.ArticleFilters{}, fmt.Errorf("malformed author_id filter [%s]", id)
		}
		filters.AuthorID = id
	}

	filters.Tag = q.Get("tag")

	return filters, nil
}
