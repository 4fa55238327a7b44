package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// CharacterUpdate handles PATCH /v1/characters/{characterID}. Admin only;
// enforced by the router.
type CharacterUpdate struct {
	Repository interface {
		datasources.CharacterFetcher
		datasources.CharacterUpdater
	}
}

type CharacterUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=300"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

func (c CharacterUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	characterID, err := pathID(r, "characterID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	var req CharacterUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode character update request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	character, err := c.Repository.FetchCharacter(ctx, characterID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if req.Name != nil {
		character.Name = *req.Name
	}
	if req.Description != nil {
		character.Description = *req.Description
	}
	character.UpdatedAt = time.Now().UTC()

	if err := c.Repository.UpdateCharacter(ctx, character); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, character)
}
