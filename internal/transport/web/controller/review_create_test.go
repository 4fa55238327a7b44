package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abotareq/imDb-sub000/internal/command"
	"github.com/Abotareq/imDb-sub000/internal/datasources/mocks"
	"github.com/Abotareq/imDb-sub000/internal/domain"
)

func testCreateReviewCommand(t *testing.T, existingErr error) *command.CreateReview {
	t.Helper()

	entityFetcher := mocks.NewMockEntityFetcher(t)
	entityFetcher.EXPECT().
		FetchEntity(mock.Anything, mock.Anything).
		Return(domain.Entity{ID: "507f1f77bcf86cd799439011"}, nil).
		Maybe()

	dupFetcher := mocks.NewMockUserEntityReviewFetcher(t)
	dupFetcher.EXPECT().
		FetchUserEntityReview(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Review{}, existingErr).
		Maybe()

	creator := mocks.NewMockReviewCreator(t)
	creator.EXPECT().
		CreateReview(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	averager := mocks.NewMockEntityRatingAverager(t)
	averager.EXPECT().
		AverageEntityRating(mock.Anything, mock.Anything).
		Return(8.0, 1, nil).
		Maybe()
	setter := mocks.NewMockEntityRatingSetter(t)
	setter.EXPECT().
		SetEntityRating(mock.Anything, mock.Anything, 8.0).
		Return(nil).
		Maybe()

	return command.NewCreateReview(
		entityFetcher,
		dupFetcher,
		creator,
		command.NewAggregateEntityRating(averager, setter),
	)
}

func TestReviewCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		existingErr error
		wantStatus  int
	}{
		{
			name:        "creates_review",
			body:        `{"entity_id":"507f1f77bcf86cd799439011","rating":8,"comment":"great"}`,
			existingErr: domain.ErrNotFound,
			wantStatus:  http.StatusCreated,
		},
		{
			name:       "duplicate_conflicts",
			body:       `{"entity_id":"507f1f77bcf86cd799439011","rating":8}`,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "rating_out_of_range",
			body:       `{"entity_id":"507f1f77bcf86cd799439011","rating":11}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing_entity_id",
			body:       `{"rating":8}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_body",
			body:       `{"rating":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := ReviewCreate{Command: testCreateReviewCommand(t, tc.existingErr)}

			req := httptest.NewRequest(http.MethodPost, "/v1/reviews", strings.NewReader(tc.body))
			req = testContextWithUser("user1", domain.RoleUser)(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusCreated {
				var review domain.Review
				err := json.NewDecoder(rec.Body).Decode(&review)
				require.NoError(t, err)
				assert.Equal(t, "user1", review.UserID)
				assert.Equal(t, 8, review.Rating)
				assert.True(t, domain.ValidID(review.ID))
			}
		})
	}
}
