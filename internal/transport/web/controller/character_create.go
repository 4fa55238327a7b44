package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// CharacterCreate handles POST /v1/characters. Admin only; enforced by
// the router.
type CharacterCreate struct {
	Creator datasources.CharacterCreator
}

type CharacterCreateRequest struct {
	Name        string `json:"name" validate:"required,max=300"`
	Description string `json:"description" validate:"max=5000"`
}

func (c CharacterCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req CharacterCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode character create request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	now := time.Now().UTC()
	character := domain.Character{
		ID:          domain.NewID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.Creator.CreateCharacter(ctx, character); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, character)
}
