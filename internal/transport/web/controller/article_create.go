package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// ArticleCreate handles POST /v1/articles. The article is authored by the
// authenticated caller.
type ArticleCreate struct {
	EntityFetcher datasources.EntityFetcher
	Creator       datasources.ArticleCreator
}

type ArticleCreateRequest struct {
	Title    string   `json:"title" validate:"required,max=500"`
	Body     string   `json:"body" validate:"required"`
	EntityID string   `json:"entity_id" validate:"omitempty,hexadecimal,len=24"`
	Tags     []string `json:"tags" validate:"dive,max=50"`
}

func (c ArticleCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req ArticleCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode article create request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if req.EntityID != "" {
		if _, err := c.EntityFetcher.FetchEntity(ctx, req.EntityID); err != nil {
			respondError(ctx, w, err)
			return
		}
	}

	now := time.Now().UTC()
	article := domain.Article{
		ID:        domain.NewID(),
		AuthorID:  domain.UserIDFromContext(ctx),
		EntityID:  req.EntityID,
		Title:     req.Title,
		Body:      req.Body,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.Creator.CreateArticle(ctx, article); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, article)
}
