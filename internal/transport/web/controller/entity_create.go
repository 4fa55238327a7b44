package controller

import (
	"net/http"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// EntityCreate handles POST /v1/entities. Admin only; enforced by the
// router.
type EntityCreate struct {
	Creator datasources.EntityCreator
}

type EntityCreateRequest struct {
	Type        string          `json:"type" validate:"required,oneof=movie tv"`
	Title       string          `json:"title" validate:"required,max=500"`
	Description string          `json:"description" validate:"max=5000"`
	ReleaseYear int             `json:"release_year" validate:"omitempty,gte=1870,lte=2100"`
	Genres      []GenrePayload  `json:"genres" validate:"dive"`
	Directors   []string        `json:"directors"`
	Cast        []CastPayload   `json:"cast" validate:"dive"`
	Seasons     []SeasonPayload `json:"seasons" validate:"dive"`
}

type GenrePayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type CastPayload struct {
	PersonID    string `json:"person_id" validate:"required,hexadecimal,len=24"`
	CharacterID string `json:"character_id" validate:"omitempty,hexadecimal,len=24"`
	Credit      string `json:"credit" validate:"max=200"`
}

type SeasonPayload struct {
	Number   int              `json:"number" validate:"gte=1"`
	Title    string           `json:"title" validate:"max=500"`
	Episodes []EpisodePayload `json:"episodes" validate:"dive"`
}

type EpisodePayload struct {
	Number         int    `json:"number" validate:"gte=1"`
	Title          string `json:"title" validate:"required,max=500"`
	RuntimeMinutes int    `json:"runtime_minutes" validate:"gte=0"`
}

func (c EntityCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req EntityCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.ErrorContext(ctx, "unable to decode entity create request", "error", err)
		respondBadRequest(ctx, w, err.Error())
		return
	}

	now := time.Now().UTC()
	entity := domain.Entity{
		ID:          domain.NewID(),
		Type:        domain.EntityType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Genres:      genresFromPayload(req.Genres),
		Directors:   req.Directors,
		Cast:        castFromPayload(req.Cast),
		Seasons:     seasonsFromPayload(req.Seasons),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.Creator.CreateEntity(ctx, entity); err != nil {
		respondError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, entity)
}

func genresFromPayload(payload []GenrePayload) []domain.Genre {
	if len(payload) == 0 {
		return nil
	}
	genres := make([]domain.Genre, 0, len(payload))
	for _, g := range payload {
		genres = append(genres, domain.Genre{Name: g.Name, Description: g.Description})
	}
	return genres
}

func castFromPayload(payload []CastPayload) []domain.CastMember {
	if len(payload) == 0 {
		return nil
	}
	cast := make([]domain.CastMember, 0, len(payload))
	for _, m := range payload {
		cast = append(cast, domain.CastMember{
			PersonID:    m.PersonID,
			CharacterID: m.CharacterID,
			Credit:      m.Credit,
		})
	}
	return cast
}

func seasonsFromPayload(payload []SeasonPayload) []domain.Season {
	if len(payload) == 0 {
		return nil
	}
	seasons := make([]domain.Season, 0, len(payload))
	for _, s := range payload {
		episodes := make([]domain.Episode, 0, len(s.Episodes))
		for _, e := range s.Episodes {
			episodes = append(episodes, domain.Episode{
				Number:         e.Number,
				Title:          e.Title,
				RuntimeMinutes: e.RuntimeMinutes,
			})
		}
		if len(episodes) == 0 {
			episodes = nil
		}
		seasons = append(seasons, domain.Season{
			Number:   s.Number,
			Title:    s.Title,
			Episodes: episodes,
		})
	}
	return seasons
}
