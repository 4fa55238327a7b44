package controller

import (
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// CharactersList handles GET /v1/characters.
type CharactersList struct {
	Lister datasources.CharacterLister
}

type CharactersListResponse struct {
	Data []domain.Character `json:"data"`
}

func (c CharactersList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		respondBadRequest(ctx, w, err.Error())
		return
	}

	filters := domain.CharacterFilters{NameContains: r.URL.Query().Get("name")}

	characters, err := c.Lister.ListCharacters(ctx, filters, page, pageSize)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, CharactersListResponse{Data: characters})
}
