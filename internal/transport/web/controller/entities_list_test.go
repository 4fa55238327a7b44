package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithUser(userID string, role domain.Role) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUserID(ctx, userID)
		ctx = domain.ContextWithRole(ctx, role)
		return r.WithContext(ctx)
	}
}

type mockEntitiesLister struct {
	*mocks.MockEntityLister
	*mocks.MockEntityCounter
}

func TestEntitiesList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	entities := []domain.Entity{
		{
			ID:        "507f1f77bcf86cd799439011",
			Type:      domain.EntityTypeMovie,
			Title:     "Heat",
			Rating:    8.3,
			CreatedAt: testTime,
			UpdatedAt: testTime,
		},
	}

	cases := []struct {
		name        string
		queryString string
		wantFilters domain.EntityFilters
		wantOptions domain.EntityListOptions
		listErr     error
		wantStatus  int
		wantTotal   int64
	}{
		{
			name:        "no_filters",
			queryString: "",
			wantFilters: domain.EntityFilters{},
			wantOptions: domain.EntityListOptions{Page: 1, PageSize: 20},
			wantStatus:  http.StatusOK,
			wantTotal:   1,
		},
		{
			name:        "type_and_genre_filters",
			queryString: "?type=movie&genre=Crime&min_rating=7.5",
			wantFilters: domain.EntityFilters{
				Type:      domain.EntityTypeMovie,
				Genre:     "Crime",
				MinRating: 7.5,
			},
			wantOptions: domain.EntityListOptions{Page: 1, PageSize: 20},
			wantStatus:  http.StatusOK,
			wantTotal:   1,
		},
		{
			name:        "sorting_and_pagination",
			queryString: "?sort_by=rating&sort_desc=true&page=2&page_size=5",
			wantFilters: domain.EntityFilters{},
			wantOptions: domain.EntityListOptions{
				OrderBy:  domain.EntityOrderingFieldRating,
				Desc:     true,
				Page:     2,
				PageSize: 5,
			},
			wantStatus: http.StatusOK,
			wantTotal:  1,
		},
		{
			name:        "invalid_type",
			queryString: "?type=book",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "invalid_min_rating",
			queryString: "?min_rating=eleven",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "min_rating_out_of_range",
			queryString: "?min_rating=11",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "invalid_sort_field",
			queryString: "?sort_by=popularity",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "page_size_over_limit",
			queryString: "?page_size=500",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "list_error",
			queryString: "",
			wantFilters: domain.EntityFilters{},
			wantOptions: domain.EntityListOptions{Page: 1, PageSize: 20},
			listErr:     errors.New("database error"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockEntityLister(t)
			counter := mocks.NewMockEntityCounter(t)

			if tc.wantStatus != http.StatusBadRequest {
				lister.EXPECT().
					ListEntities(mock.Anything, tc.wantFilters, tc.wantOptions).
					Return(entities, tc.listErr)
			}
			if tc.wantStatus == http.StatusOK {
				counter.EXPECT().
					CountEntities(mock.Anything, tc.wantFilters).
					Return(tc.wantTotal, nil)
			}

			controller := EntitiesList{Lister: mockEntitiesLister{lister, counter}}

			req := httptest.NewRequest(http.MethodGet, "/v1/entities"+tc.queryString, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp EntitiesListResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				require.NoError(t, err)
				assert.Equal(t, entities, resp.Data)
				assert.Equal(t, tc.wantTotal, resp.Metadata.TotalRows)
			}
		})
	}
}
