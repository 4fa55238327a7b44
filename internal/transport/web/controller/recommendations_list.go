package controller

import (
	"context"
	"net/http"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

// RecommendationsList handles GET /v1/recommendations for the
// authenticated caller.
type RecommendationsList struct {
	Command interface {
		Execute(ctx context.Context, userID string) ([]domain.Entity, error)
	}
}

type RecommendationsListResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation is a trimmed entity view for recommendation lists.
type Recommendation struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Type      domain.EntityType `json:"type"`
	PosterURL string            `json:"poster_url,omitempty"`
	Genres    []string          `json:"genres"`
}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entities, err := c.Command.Execute(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	recommendations := make([]Recommendation, 0, len(entities))
	for _, e := range entities {
		recommendations = append(recommendations, Recommendation{
			ID:        e.ID,
			Title:     e.Title,
			Type:      e.Type,
			PosterURL: e.PosterURL,
			Genres:    e.GenreNames(),
		})
	}

	writeJSON(ctx, w, http.StatusOK, RecommendationsListResponse{Recommendations: recommendations})
}
