package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// ArticleGet handles GET /v1/articles/{articleID}.
type ArticleGet struct {
	Fetcher datasources.ArticleFetcher
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articleID, err := pathID(r, "articleID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	article, err := c.Fetcher.FetchArticle(ctx, articleID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, article)
}
