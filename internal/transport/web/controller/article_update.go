package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// ArticleUpdate handles PATCH /v1/articles/{articleID}. Author or admin
// only.
type ArticleUpdate struct {
	Repository interface {
		datasources.ArticleFetcher
		datasources.ArticleUpdater
	}
}

type ArticleUpdateRequest struct {
	Title *string   `json:"title" validate:"omitempty,min=1,max=500"`
	Body  *string   `json:"body" validate:"omitempty,min=1"`
	Tags  *[]string `json:"tags" validate:"omitempty,dive,max=50"`
}

func (c ArticleUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	articleID, err := pathID(r, "articleID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	var req ArticleUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode article update request", "error", err)
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

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Body != nil {
		article.Body = *req.Body
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}
	article.UpdatedAt = time.Now().UTC()

	if err := c.Repository.UpdateArticle(ctx, article); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, article)
}
