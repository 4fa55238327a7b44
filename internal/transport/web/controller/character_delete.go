package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

// CharacterDelete handles DELETE /v1/characters/{characterID}. Admin
// only; enforced by the router.
type CharacterDelete struct {
	Deleter datasources.CharacterDeleter
}

func (c CharacterDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	characterID, err := pathID(r, "characterID")
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	if err := c.Deleter.DeleteCharacter(ctx, characterID); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
