package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// PersonCreate handles POST /v1/people. Admin only; enforced by the
// router.
type PersonCreate struct {
	Creator datasources.PersonCreator
}

type PersonCreateRequest struct {
	Name      string     `json:"name" validate:"required,max=300"`
	Biography string     `json:"biography" validate:"max=10000"`
	BirthDate *time.Time `json:"birth_date"`
}

func (c PersonCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req PersonCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode person create request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	now := time.Now().UTC()
	person := domain.Person{
		ID:        domain.NewID(),
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.Creator.CreatePerson(ctx, person); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, person)
}
