package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func TestEntityRatingGet_ServeHTTP(t *testing.T) {
	const entityID = "507f1f77bcf86cd799439011"

	fetcher := mocks.NewMockEntityFetcher(t)
	fetcher.EXPECT().
		FetchEntity(mock.Anything, entityID).
		Return(domain.Entity{ID: entityID, Title: "Heat"}, nil)

	// Reviews 6, 8, 10 average to 8.0.
	averager := mocks.NewMockEntityRatingAverager(t)
	averager.EXPECT().
		AverageEntityRating(mock.Anything, entityID).
		Return(8.0, 3, nil)
	setter := mocks.NewMockEntityRatingSetter(t)
	setter.EXPECT().
		SetEntityRating(mock.Anything, entityID, 8.0).
		Return(nil)

	controller := EntityRatingGet{
		Fetcher:    fetcher,
		Aggregator: command.NewAggregateEntityRating(averager, setter),
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/entities/"+entityID+"/rating", nil)
	req = testContext()(req)
	req = mux.SetURLVars(req, map[string]string{"entityID": entityID})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp EntityRatingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, entityID, resp.EntityID)
	assert.Equal(t, "Heat", resp.EntityTitle)
	assert.Equal(t, 8.0, resp.Rating)
}
