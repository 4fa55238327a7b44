package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/domain"
)

type recommendFunc func(ctx context.Context, userID string) ([]domain.Entity, error)

func (f recommendFunc) Execute(ctx context.Context, userID string) ([]domain.Entity, error) {
	return f(ctx, userID)
}

func TestRecommendationsList_ServeHTTP(t *testing.T) {
	entities := []domain.Entity{
		{
			ID:        "507f1f77bcf86cd799439011",
			Title:     "Heat",
			Type:      domain.EntityTypeMovie,
			PosterURL: "https://img.example.com/heat.jpg",
			Genres:    []domain.Genre{{Name: "Crime"}, {Name: "Drama"}},
		},
		{
			ID:    "507f1f77bcf86cd799439012",
			Title: "The Wire",
			Type:  domain.EntityTypeTV,
		},
	}

	t.Run("returns_trimmed_entities", func(t *testing.T) {
		controller := RecommendationsList{
			Command: recommendFunc(func(_ context.Context, userID string) ([]domain.Entity, error) {
				assert.Equal(t, "user1", userID)
				return entities, nil
			}),
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/recommendations", nil)
		req = testContextWithUser("user1", domain.RoleUser)(req)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RecommendationsListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Recommendations, 2)
		assert.Equal(t, Recommendation{
			ID:        "507f1f77bcf86cd799439011",
			Title:     "Heat",
			Type:      domain.EntityTypeMovie,
			PosterURL: "https://img.example.com/heat.jpg",
			Genres:    []string{"Crime", "Drama"},
		}, resp.Recommendations[0])
		assert.Empty(t, resp.Recommendations[1].PosterURL)
	})

	t.Run("empty_recommendations", func(t *testing.T) {
		controller := RecommendationsList{
			Command: recommendFunc(func(context.Context, string) ([]domain.Entity, error) {
				return nil, nil
			}),
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/recommendations", nil)
		req = testContextWithUser("user1", domain.RoleUser)(req)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"recommendations":[]}`, rec.Body.String())
	})

	t.Run("command_error", func(t *testing.T) {
		controller := RecommendationsList{
			Command: recommendFunc(func(context.Context, string) ([]domain.Entity, error) {
				return nil, errors.New("database error")
			}),
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/recommendations", nil)
		req = testContextWithUser("user1", domain.RoleUser)(req)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
