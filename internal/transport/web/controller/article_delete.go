package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// ArticleDelete handles DELETE /v1/articles/{articleID}. Author or admin
// only.
type ArticleDelete struct {
	Repository interface {
		datasources.ArticleFetcher
		datasources.ArticleDeleter
	}
}

func (c ArticleDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articleID, err := pathID(r, "articleID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	article, err := c.Repository.FetchArticle(ctx, articleID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if article.AuthorID != domain.UserIDFromContext(ctx) && domain.RoleFromContext(ctx) != domain.RoleAdmin {
		respondError(ctx, w, domain.ErrForbidden)
		return
	}

	if err := c.Repository.DeleteArticle(ctx, articleID); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
