package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/datasources/localdisk"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// EntityPosterUpload handles POST /v1/entities/{entityID}/poster. Admin
// only; enforced by the router.
type EntityPosterUpload struct {
	Repository interface {
		datasources.EntityFetcher
		datasources.EntityUpdater
	}
	Images datasources.ImageStore
}

type ImageUploadResponse struct {
	URL string `json:"url"`
}

func (c EntityPosterUpload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	entityID, err := pathID(r, "entityID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	entity, err := c.Repository.FetchEntity(ctx, entityID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	file, contentType, err := imageFromRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to read poster upload", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}
	defer func() { _ = file.Close() }()

	posterURL, err := c.Images.StoreImage(ctx, "poster-"+uuid.NewString(), contentType, file)
	if err != nil {
		if errors.Is(err, localdisk.ErrUnsupportedImageType) {
			respondBadRequest(ctx, w, err.Error())
			return
		}
		respondError(ctx, w, err)
		return
	}

	entity.PosterURL = posterURL
	entity.UpdatedAt = time.Now().UTC()
	if err := c.Repository.UpdateEntity(ctx, entity); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ImageUploadResponse{URL: posterURL})
}
