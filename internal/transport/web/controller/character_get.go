package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// CharacterGet handles GET /v1/characters/{characterID}.
type CharacterGet struct {
	Fetcher datasources.CharacterFetcher
}

func (c CharacterGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	characterID, err := pathID(r, "characterID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	character, err := c.Fetcher.FetchCharacter(ctx, characterID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, character)
}
