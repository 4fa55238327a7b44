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

// PersonPhotoUpload handles POST /v1/people/{personID}/photo. Admin only;
// enforced by the router.
type PersonPhotoUpload struct {
	Repository interface {
		datasources.PersonFetcher
		datasources.PersonUpdater
	}
	Images datasources.ImageStore
}

func (c PersonPhotoUpload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	personID, err := pathID(r, "personID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	person, err := c.Repository.FetchPerson(ctx, personID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	file, contentType, err := imageFromRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to read photo upload", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}
	defer func() { _ = file.Close() }()

	photoURL, err := c.Images.StoreImage(ctx, "photo-"+uuid.NewString(), contentType, file)
	if err != nil {
		if errors.Is(err, localdisk.ErrUnsupportedImageType) {
			respondBadRequest(ctx, w, err.Error())
			return
		}
		respondError(ctx, w, err)
		return
	}

	person.PhotoURL = photoURL
	person.UpdatedAt = time.Now().UTC()
	if err := c.Repository.UpdatePerson(ctx, person); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ImageUploadResponse{URL: photoURL})
}
