package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// PersonUpdate handles PATCH /v1/people/{personID}. Admin only; enforced by
// the router.
type PersonUpdate struct {
	Repository interface {
		datasources.PersonFetcher
		datasources.PersonUpdater
	}
}

type PersonUpdateRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=300"`
	Biography *string    `json:"biography" validate:"omitempty,max=10000"`
	BirthDate *time.Time `json:"birth_date"`
}

func (c PersonUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	personID, err := pathID(r, "personID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	var req PersonUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode person update request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	person, err := c.Repository.FetchPerson(ctx, personID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.Biography != nil {
		person.Biography = *req.Biography
	}
	if req.BirthDate != nil {
		person.BirthDate = req.BirthDate
	}
	person.UpdatedAt = time.Now().UTC()

	if err := c.Repository.UpdatePerson(ctx, person); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, person)
}
