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

	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func TestEntityGet_ServeHTTP(t *testing.T) {
	entity := domain.Entity{
		ID:    "507f1f77bcf86cd799439011",
		Type:  domain.EntityTypeTV,
		Title: "The Wire",
		Genres: []domain.Genre{
			{Name: "Crime"},
			{Name: "Drama"},
		},
	}

	cases := []struct {
		name       string
		entityID   string
		fetchErr   error
		wantStatus int
	}{
		{
			name:       "found",
			entityID:   entity.ID,
			wantStatus: http.StatusOK,
		},
		{
			name:       "not_found",
			entityID:   "507f1f77bcf86cd799439099",
			fetchErr:   domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed_id",
			entityID:   "not-an-id",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockEntityFetcher(t)

			if tc.wantStatus != http.StatusBadRequest {
				fetcher.EXPECT().
					FetchEntity(mock.Anything, tc.entityID).
					Return(entity, tc.fetchErr)
			}

			controller := EntityGet{Fetcher: fetcher}

			req := httptest.NewRequest(http.MethodGet, "/v1/entities/"+tc.entityID, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"entityID": tc.entityID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var got domain.Entity
				err := json.NewDecoder(rec.Body).Decode(&got)
				require.NoError(t, err)
				assert.Equal(t, entity, got)
			}
		})
	}
}
